package employee

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	// EmployeeCode is optional; drafts get a generated DRAFT_ code.
	EmployeeCode       string  `json:"employee_code"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Address            *string `json:"address"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender"`
	DepartmentID       string  `json:"department_id"`
	DesignationID      string  `json:"designation_id"`
	ReportingManagerID *string `json:"reporting_manager_id"`
	JoiningDate        string  `json:"joining_date"`
	Status             string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	} else if len(r.FirstName) > 100 {
		errs.Add("first_name", "first_name must not exceed 100 characters")
	}
	if len(r.LastName) > 100 {
		errs.Add("last_name", "last_name must not exceed 100 characters")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email is invalid")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone is invalid")
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}
	if r.Gender != nil && !Gender(*r.Gender).IsValid() {
		errs.Add("gender", "gender must be one of male, female, other")
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs.Add("department_id", "department_id is required")
	}
	if validator.IsEmpty(r.DesignationID) {
		errs.Add("designation_id", "designation_id is required")
	}
	if validator.IsEmpty(r.JoiningDate) {
		errs.Add("joining_date", "joining_date is required")
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "status is invalid")
	}

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID                 string  `json:"-"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Address            *string `json:"address"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender"`
	DepartmentID       string  `json:"department_id"`
	DesignationID      string  `json:"designation_id"`
	ReportingManagerID *string `json:"reporting_manager_id"`
	JoiningDate        string  `json:"joining_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		DateOfBirth:   r.DateOfBirth,
		Gender:        r.Gender,
		DepartmentID:  r.DepartmentID,
		DesignationID: r.DesignationID,
		JoiningDate:   r.JoiningDate,
	}
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if err := create.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	return errs.Err()
}

type ChangeStatusRequest struct {
	ID            string  `json:"-"`
	Status        string  `json:"status"`
	RelievingDate *string `json:"relieving_date"`
}

func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if !Status(r.Status).IsValid() {
		errs.Add("status", "status is invalid")
	}
	if r.RelievingDate != nil {
		if _, ok := validator.IsValidDate(*r.RelievingDate); !ok {
			errs.Add("relieving_date", "relieving_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type EmployeeFilter struct {
	Status       *Status
	DepartmentID *string
	Search       string
}

type EmployeeResponse struct {
	ID                 string     `json:"id"`
	EmployeeCode       string     `json:"employee_code"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone,omitempty"`
	Address            *string    `json:"address,omitempty"`
	DateOfBirth        *string    `json:"date_of_birth,omitempty"`
	Gender             *Gender    `json:"gender,omitempty"`
	DepartmentID       string     `json:"department_id"`
	DepartmentName     *string    `json:"department_name,omitempty"`
	DesignationID      string     `json:"designation_id"`
	DesignationName    *string    `json:"designation_name,omitempty"`
	ReportingManagerID *string    `json:"reporting_manager_id,omitempty"`
	JoiningDate        string     `json:"joining_date"`
	RelievingDate      *string    `json:"relieving_date,omitempty"`
	Status             Status     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID,
		EmployeeCode:       e.EmployeeCode,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		FullName:           e.FullName(),
		Email:              e.Email,
		Phone:              e.Phone,
		Address:            e.Address,
		DateOfBirth:        formatDate(e.DateOfBirth),
		Gender:             e.Gender,
		DepartmentID:       e.DepartmentID,
		DepartmentName:     e.DepartmentName,
		DesignationID:      e.DesignationID,
		DesignationName:    e.DesignationName,
		ReportingManagerID: e.ReportingManagerID,
		JoiningDate:        e.JoiningDate.Format(validator.DateLayout),
		RelievingDate:      formatDate(e.RelievingDate),
		Status:             e.Status,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
		DeletedAt:          e.DeletedAt,
	}
}
