package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
)

// Proration describes how much of a pay period an employee is paid for.
type Proration struct {
	DaysInMonth int
	PaidDays    int
	IsProRated  bool
	Ratio       decimal.Decimal
	MonthStart  time.Time
	MonthEnd    time.Time
}

// DaysIn returns the number of calendar days in the month.
func DaysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Prorate computes paid days for an employee who joined on joiningDate.
// Joining inside the month pays from the joining day to month end inclusive,
// joining after the month pays nothing, joining before pays the full month.
func Prorate(joiningDate time.Time, month, year int) Proration {
	days := DaysIn(month, year)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), days, 0, 0, 0, 0, time.UTC)
	joined := time.Date(joiningDate.Year(), joiningDate.Month(), joiningDate.Day(), 0, 0, 0, 0, time.UTC)

	p := Proration{
		DaysInMonth: days,
		PaidDays:    days,
		MonthStart:  start,
		MonthEnd:    end,
	}

	switch {
	case joined.After(end):
		p.PaidDays = 0
		p.IsProRated = true
	case !joined.Before(start):
		p.PaidDays = int(end.Sub(joined).Hours()/24) + 1
		if p.PaidDays < 0 {
			p.PaidDays = 0
		}
		p.IsProRated = p.PaidDays < days
	}

	p.Ratio = decimal.NewFromInt(int64(p.PaidDays)).Div(decimal.NewFromInt(int64(days)))
	return p
}

// Compute builds the payroll snapshot for one employee and period from the active salary.
// Components are scaled and rounded one by one and the totals derived from the rounded values.
func Compute(active salary.Salary, employeeID string, joiningDate time.Time, month, year int) Payroll {
	p := Prorate(joiningDate, month, year)

	scaled := active.Components.Scale(p.Ratio)
	totals := salary.Calculate(scaled)

	perDay := salary.Round(active.GrossSalary.Div(decimal.NewFromInt(int64(p.DaysInMonth))))

	const leaveDays = 0
	return Payroll{
		EmployeeID:        employeeID,
		SalaryID:          active.ID,
		Month:             month,
		Year:              year,
		WorkingDays:       p.DaysInMonth,
		PresentDays:       p.PaidDays,
		LeaveDays:         leaveDays,
		AbsentDays:        p.DaysInMonth - p.PaidDays - leaveDays,
		TotalCalendarDays: p.DaysInMonth,
		PaidDays:          p.PaidDays,
		IsProRated:        p.IsProRated,
		JoiningDate:       joiningDate,
		PerDaySalary:      perDay,
		Components:        scaled,
		GrossSalary:       totals.GrossSalary,
		TotalDeductions:   totals.TotalDeductions,
		NetSalary:         totals.NetSalary,
	}
}
