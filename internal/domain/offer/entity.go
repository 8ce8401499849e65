package offer

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
)

type OfferLetter struct {
	ID               string
	CandidateName    string
	CandidateEmail   string
	CandidatePhone   *string
	CandidateAddress *string
	DepartmentID     string
	DesignationID    string
	JoiningDate      time.Time
	Location         *string
	salary.Components
	salary.Totals
	Status                 Status
	EmployeeID             *string
	TemplateID             *string
	GeneratedContent       string
	UnresolvedPlaceholders []string
	FilePath               *string
	GeneratedOn            time.Time
	GeneratedBy            string
	SentOn                 *time.Time
	AcceptedOn             *time.Time
	CreatedAt              time.Time
	CreatedBy              string
	UpdatedAt              time.Time
	UpdatedBy              *string
	DeletedAt              *time.Time

	// Joined fields
	DepartmentName   *string
	DesignationTitle *string
	EmployeeCode     *string
}

// Recalculate refreshes the derived totals from the components.
func (o *OfferLetter) Recalculate() {
	o.Totals = salary.Calculate(o.Components)
}
