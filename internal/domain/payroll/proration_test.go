package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(1, 2024))
	assert.Equal(t, 29, DaysIn(2, 2024))
	assert.Equal(t, 28, DaysIn(2, 2023))
	assert.Equal(t, 30, DaysIn(6, 2024))
	assert.Equal(t, 31, DaysIn(12, 2024))
}

func TestProrate(t *testing.T) {
	tests := []struct {
		name     string
		joined   time.Time
		month    int
		year     int
		paidDays int
		proRated bool
		ratio    string
	}{
		{"joined mid month of 30 days", day(2024, 6, 16), 6, 2024, 15, true, "0.5"},
		{"joined on the first", day(2024, 6, 1), 6, 2024, 30, false, "1"},
		{"joined on the last day", day(2024, 6, 30), 6, 2024, 1, true, "0.0333333333333333"},
		{"joined earlier", day(2023, 1, 10), 6, 2024, 30, false, "1"},
		{"joins after the month", day(2024, 7, 1), 6, 2024, 0, true, "0"},
		{"leap february", day(2024, 2, 15), 2, 2024, 15, true, "0.5172413793103448"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Prorate(tt.joined, tt.month, tt.year)
			assert.Equal(t, tt.paidDays, p.PaidDays)
			assert.Equal(t, tt.proRated, p.IsProRated)
			assert.True(t, dec(tt.ratio).Equal(p.Ratio), "ratio %s", p.Ratio)
		})
	}
}

func TestProrate_IgnoresTimeOfDay(t *testing.T) {
	p := Prorate(time.Date(2024, 6, 16, 23, 30, 0, 0, time.FixedZone("IST", 19800)), 6, 2024)
	assert.Equal(t, 15, p.PaidDays)
}

func activeSalary() salary.Salary {
	s := salary.Salary{
		ID:         "sal-1",
		EmployeeID: "emp-1",
		IsActive:   true,
		Components: salary.Components{
			BasicSalary:         dec("50000"),
			HRA:                 dec("20000"),
			ConveyanceAllowance: dec("1600"),
			MedicalAllowance:    dec("1250.55"),
			SpecialAllowance:    dec("3333.33"),
			PF:                  dec("1800"),
			ProfessionalTax:     dec("200"),
			TDS:                 dec("4500.75"),
		},
	}
	s.Recalculate()
	return s
}

func TestCompute_HalfMonth(t *testing.T) {
	active := activeSalary()

	p := Compute(active, "emp-1", day(2024, 6, 16), 6, 2024)

	assert.Equal(t, 30, p.WorkingDays)
	assert.Equal(t, 30, p.TotalCalendarDays)
	assert.Equal(t, 15, p.PaidDays)
	assert.Equal(t, 15, p.PresentDays)
	assert.Equal(t, 0, p.LeaveDays)
	assert.Equal(t, 15, p.AbsentDays)
	assert.True(t, p.IsProRated)
	assert.Equal(t, "sal-1", p.SalaryID)

	half := dec("0.5")
	assert.True(t, salary.Round(active.BasicSalary.Mul(half)).Equal(p.BasicSalary))
	assert.True(t, salary.Round(active.HRA.Mul(half)).Equal(p.HRA))
	assert.True(t, salary.Round(active.MedicalAllowance.Mul(half)).Equal(p.MedicalAllowance))
	assert.True(t, dec("625.28").Equal(p.MedicalAllowance), p.MedicalAllowance.String())
	assert.True(t, dec("1666.67").Equal(p.SpecialAllowance), p.SpecialAllowance.String())
	assert.True(t, dec("2250.38").Equal(p.TDS), p.TDS.String())

	// Totals come from the rounded components.
	want := salary.Calculate(p.Components)
	assert.True(t, want.GrossSalary.Equal(p.GrossSalary))
	assert.True(t, want.TotalDeductions.Equal(p.TotalDeductions))
	assert.True(t, p.GrossSalary.Sub(p.TotalDeductions).Equal(p.NetSalary))
	assert.True(t, dec("38091.95").Equal(p.GrossSalary), p.GrossSalary.String())

	// Per day salary uses the unscaled gross.
	assert.True(t, salary.Round(active.GrossSalary.Div(dec("30"))).Equal(p.PerDaySalary))
	assert.True(t, dec("2539.46").Equal(p.PerDaySalary), p.PerDaySalary.String())
}

func TestCompute_FullMonth(t *testing.T) {
	active := activeSalary()

	p := Compute(active, "emp-1", day(2020, 1, 1), 2, 2024)

	assert.False(t, p.IsProRated)
	assert.Equal(t, 29, p.PaidDays)
	assert.Equal(t, 0, p.AbsentDays)
	assert.True(t, active.GrossSalary.Equal(p.GrossSalary))
	assert.True(t, active.NetSalary.Equal(p.NetSalary))
}

func TestCompute_FutureJoiner(t *testing.T) {
	p := Compute(activeSalary(), "emp-1", day(2024, 8, 1), 6, 2024)

	assert.Equal(t, 0, p.PaidDays)
	assert.Equal(t, 30, p.AbsentDays)
	assert.True(t, p.GrossSalary.IsZero())
	assert.True(t, p.NetSalary.IsZero())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "March 2024", Payroll{Month: 3, Year: 2024}.PeriodLabel())
}
