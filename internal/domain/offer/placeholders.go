package offer

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
)

const DefaultCompanyName = "WorkAxis HRMS"

var monthsPerYear = decimal.NewFromInt(12)

// PlaceholderContext carries the values that do not live on the offer itself.
type PlaceholderContext struct {
	DepartmentName   string
	DesignationTitle string
	CompanyName      string
	Now              time.Time
}

// BuildPlaceholders returns the substitution map for an offer whose totals are already computed.
func BuildPlaceholders(o OfferLetter, pc PlaceholderContext) map[string]string {
	company := pc.CompanyName
	if company == "" {
		company = DefaultCompanyName
	}

	values := map[string]string{
		template.KeyCandidateName:    o.CandidateName,
		template.KeyCandidateEmail:   o.CandidateEmail,
		template.KeyCandidatePhone:   deref(o.CandidatePhone),
		template.KeyCandidateAddress: deref(o.CandidateAddress),
		template.KeyDesignation:      pc.DesignationTitle,
		template.KeyDepartment:       pc.DepartmentName,
		template.KeyJoiningDate:      o.JoiningDate.Format(template.DateFormat),
		template.KeyLocation:         deref(o.Location),
		template.KeyCompanyName:      company,
		template.KeyTodayDate:        pc.Now.Format(template.DateFormat),
		template.KeyTodayTime:        pc.Now.Format(template.TimeFormat),
		template.KeyCurrentYear:      strconv.Itoa(pc.Now.Year()),
	}

	for key, amount := range amounts(o.Components, o.Totals) {
		values[key] = template.FormatAmount(amount)
		values[template.MonthlyKey(key)] = template.FormatAmount(amount.Div(monthsPerYear))
	}

	return values
}

func amounts(c salary.Components, t salary.Totals) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		template.KeyBasicSalary:         c.BasicSalary,
		template.KeyHRA:                 c.HRA,
		template.KeyConveyanceAllowance: c.ConveyanceAllowance,
		template.KeyMedicalAllowance:    c.MedicalAllowance,
		template.KeySpecialAllowance:    c.SpecialAllowance,
		template.KeyOtherAllowances:     c.OtherAllowances,
		template.KeyGrossSalary:         t.GrossSalary,
		template.KeyPF:                  c.PF,
		template.KeyESI:                 c.ESI,
		template.KeyProfessionalTax:     c.ProfessionalTax,
		template.KeyTDS:                 c.TDS,
		template.KeyOtherDeductions:     c.OtherDeductions,
		template.KeyTotalDeductions:     t.TotalDeductions,
		template.KeyNetSalary:           t.NetSalary,
		template.KeyCTC:                 t.CTC,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
