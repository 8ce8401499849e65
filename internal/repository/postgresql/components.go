package postgresql

import "github.com/workaxis/hrms-backend-go/internal/domain/salary"

const componentColumns = `basic_salary, hra, conveyance_allowance, medical_allowance, special_allowance, other_allowances,
	pf, esi, professional_tax, tds, other_deductions`

func componentArgs(c salary.Components) []any {
	return []any{
		c.BasicSalary, c.HRA, c.ConveyanceAllowance, c.MedicalAllowance, c.SpecialAllowance, c.OtherAllowances,
		c.PF, c.ESI, c.ProfessionalTax, c.TDS, c.OtherDeductions,
	}
}

func componentDest(c *salary.Components) []any {
	return []any{
		&c.BasicSalary, &c.HRA, &c.ConveyanceAllowance, &c.MedicalAllowance, &c.SpecialAllowance, &c.OtherAllowances,
		&c.PF, &c.ESI, &c.ProfessionalTax, &c.TDS, &c.OtherDeductions,
	}
}
