package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID                 string
	EmployeeCode       string
	FirstName          string
	LastName           string
	Email              string
	Phone              *string
	Address            *string
	DateOfBirth        *time.Time
	Gender             *Gender
	DepartmentID       string
	DesignationID      string
	ReportingManagerID *string
	JoiningDate        time.Time
	RelievingDate      *time.Time
	Status             Status
	CreatedAt          time.Time
	CreatedBy          string
	UpdatedAt          time.Time
	UpdatedBy          *string
	DeletedAt          *time.Time

	// Joined fields
	DepartmentName  *string
	DesignationName *string
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}
