package salary

import "time"

// Salary is a time-boxed compensation record for one employee.
// At most one salary per employee is active at a time.
type Salary struct {
	ID            string
	EmployeeID    string
	OfferLetterID *string
	Components
	Totals
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	IsActive      bool
	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	UpdatedBy     *string

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}

// Recalculate refreshes the derived totals from the components.
func (s *Salary) Recalculate() {
	s.Totals = Calculate(s.Components)
}

// SupersededEffectiveTo is the EffectiveTo stamped on salaries replaced by one starting at newFrom.
func SupersededEffectiveTo(newFrom time.Time) time.Time {
	return newFrom.AddDate(0, 0, -1)
}
