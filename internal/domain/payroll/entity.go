package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
)

// Payroll is the generated pay record of one employee for one month.
// There is at most one per employee and period.
type Payroll struct {
	ID         string
	EmployeeID string
	SalaryID   string
	Month      int
	Year       int

	// Attendance snapshot
	WorkingDays       int
	PresentDays       int
	LeaveDays         int
	AbsentDays        int
	TotalCalendarDays int
	PaidDays          int
	IsProRated        bool
	JoiningDate       time.Time
	PerDaySalary      decimal.Decimal

	salary.Components
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	IsProcessed bool
	ProcessedOn *time.Time
	ProcessedBy *string
	CreatedAt   time.Time
	CreatedBy   string

	// Joined fields
	EmployeeCode    *string
	EmployeeName    *string
	DepartmentName  *string
	DesignationName *string
}

func (p Payroll) Totals() salary.Totals {
	return salary.Totals{
		GrossSalary:     p.GrossSalary,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
	}
}

// PeriodLabel renders the period as e.g. "March 2024".
func (p Payroll) PeriodLabel() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}
