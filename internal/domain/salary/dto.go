package salary

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type CreateSalaryRequest struct {
	EmployeeID    string `json:"employee_id"`
	EffectiveFrom string `json:"effective_from"`
	Components
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.EffectiveFrom) {
		errs.Add("effective_from", "effective_from is required")
	} else if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs.Add("effective_from", "effective_from must be in YYYY-MM-DD format")
	}
	errs = append(errs, ValidateComponents(r.Components)...)

	return errs.Err()
}

type UpdateSalaryRequest struct {
	ID            string `json:"-"`
	EffectiveFrom string `json:"effective_from"`
	Components
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.EffectiveFrom != "" {
		if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
			errs.Add("effective_from", "effective_from must be in YYYY-MM-DD format")
		}
	}
	errs = append(errs, ValidateComponents(r.Components)...)

	return errs.Err()
}

// ValidateComponents rejects negative amounts.
func ValidateComponents(c Components) validator.ValidationErrors {
	var errs validator.ValidationErrors
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"basic_salary", c.BasicSalary},
		{"hra", c.HRA},
		{"conveyance_allowance", c.ConveyanceAllowance},
		{"medical_allowance", c.MedicalAllowance},
		{"special_allowance", c.SpecialAllowance},
		{"other_allowances", c.OtherAllowances},
		{"pf", c.PF},
		{"esi", c.ESI},
		{"professional_tax", c.ProfessionalTax},
		{"tds", c.TDS},
		{"other_deductions", c.OtherDeductions},
	}
	for _, f := range fields {
		if !validator.IsNonNegative(f.value) {
			errs.Add(f.name, f.name+" must not be negative")
		}
	}
	return errs
}

// AmountsResponse renders components and totals with two fractional digits.
type AmountsResponse struct {
	BasicSalary         string `json:"basic_salary"`
	HRA                 string `json:"hra"`
	ConveyanceAllowance string `json:"conveyance_allowance"`
	MedicalAllowance    string `json:"medical_allowance"`
	SpecialAllowance    string `json:"special_allowance"`
	OtherAllowances     string `json:"other_allowances"`
	GrossSalary         string `json:"gross_salary"`
	PF                  string `json:"pf"`
	ESI                 string `json:"esi"`
	ProfessionalTax     string `json:"professional_tax"`
	TDS                 string `json:"tds"`
	OtherDeductions     string `json:"other_deductions"`
	TotalDeductions     string `json:"total_deductions"`
	NetSalary           string `json:"net_salary"`
	CTC                 string `json:"ctc,omitempty"`
}

func NewAmountsResponse(c Components, t Totals) AmountsResponse {
	return AmountsResponse{
		BasicSalary:         c.BasicSalary.StringFixed(2),
		HRA:                 c.HRA.StringFixed(2),
		ConveyanceAllowance: c.ConveyanceAllowance.StringFixed(2),
		MedicalAllowance:    c.MedicalAllowance.StringFixed(2),
		SpecialAllowance:    c.SpecialAllowance.StringFixed(2),
		OtherAllowances:     c.OtherAllowances.StringFixed(2),
		GrossSalary:         t.GrossSalary.StringFixed(2),
		PF:                  c.PF.StringFixed(2),
		ESI:                 c.ESI.StringFixed(2),
		ProfessionalTax:     c.ProfessionalTax.StringFixed(2),
		TDS:                 c.TDS.StringFixed(2),
		OtherDeductions:     c.OtherDeductions.StringFixed(2),
		TotalDeductions:     t.TotalDeductions.StringFixed(2),
		NetSalary:           t.NetSalary.StringFixed(2),
		CTC:                 t.CTC.StringFixed(2),
	}
}

type SalaryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	OfferLetterID *string `json:"offer_letter_id,omitempty"`
	AmountsResponse
	EffectiveFrom string    `json:"effective_from"`
	EffectiveTo   *string   `json:"effective_to,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		EmployeeCode:    s.EmployeeCode,
		EmployeeName:    s.EmployeeName,
		OfferLetterID:   s.OfferLetterID,
		AmountsResponse: NewAmountsResponse(s.Components, s.Totals),
		EffectiveFrom:   s.EffectiveFrom.Format(validator.DateLayout),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		CreatedBy:       s.CreatedBy,
	}
	if s.EffectiveTo != nil {
		to := s.EffectiveTo.Format(validator.DateLayout)
		resp.EffectiveTo = &to
	}
	return resp
}
