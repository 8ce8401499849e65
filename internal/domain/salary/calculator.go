package salary

import "github.com/shopspring/decimal"

// Components are the earning and deduction amounts of a salary structure.
type Components struct {
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	OtherAllowances     decimal.Decimal `json:"other_allowances"`

	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

// Totals are derived from Components by Calculate.
type Totals struct {
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	CTC             decimal.Decimal
}

// Calculate derives gross, deductions, net and CTC.
// CTC counts the employer PF contribution as equal to the employee PF.
func Calculate(c Components) Totals {
	gross := c.BasicSalary.
		Add(c.HRA).
		Add(c.ConveyanceAllowance).
		Add(c.MedicalAllowance).
		Add(c.SpecialAllowance).
		Add(c.OtherAllowances)

	deductions := c.PF.
		Add(c.ESI).
		Add(c.ProfessionalTax).
		Add(c.TDS).
		Add(c.OtherDeductions)

	return Totals{
		GrossSalary:     gross,
		TotalDeductions: deductions,
		NetSalary:       gross.Sub(deductions),
		CTC:             gross.Add(c.PF),
	}
}

// Round rounds a monetary amount to 2 decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Scale multiplies every component by ratio and rounds each result independently.
func (c Components) Scale(ratio decimal.Decimal) Components {
	scale := func(d decimal.Decimal) decimal.Decimal { return Round(d.Mul(ratio)) }
	return Components{
		BasicSalary:         scale(c.BasicSalary),
		HRA:                 scale(c.HRA),
		ConveyanceAllowance: scale(c.ConveyanceAllowance),
		MedicalAllowance:    scale(c.MedicalAllowance),
		SpecialAllowance:    scale(c.SpecialAllowance),
		OtherAllowances:     scale(c.OtherAllowances),
		PF:                  scale(c.PF),
		ESI:                 scale(c.ESI),
		ProfessionalTax:     scale(c.ProfessionalTax),
		TDS:                 scale(c.TDS),
		OtherDeductions:     scale(c.OtherDeductions),
	}
}

// Earnings lists the earning components in display order.
func (c Components) Earnings() []NamedAmount {
	return []NamedAmount{
		{"Basic Salary", c.BasicSalary},
		{"HRA", c.HRA},
		{"Conveyance Allowance", c.ConveyanceAllowance},
		{"Medical Allowance", c.MedicalAllowance},
		{"Special Allowance", c.SpecialAllowance},
		{"Other Allowances", c.OtherAllowances},
	}
}

func (c Components) Deductions() []NamedAmount {
	return []NamedAmount{
		{"Provident Fund", c.PF},
		{"ESI", c.ESI},
		{"Professional Tax", c.ProfessionalTax},
		{"TDS", c.TDS},
		{"Other Deductions", c.OtherDeductions},
	}
}

type NamedAmount struct {
	Name   string
	Amount decimal.Decimal
}
