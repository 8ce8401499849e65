package payroll

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	EmployeeID *string `json:"employee_id"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if !validator.IsValidYear(r.Year) {
		errs.Add("year", "year must be between 2000 and 2100")
	}
	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs.Add("employee_id", "employee_id must not be blank")
	}

	return errs.Err()
}

type SkippedEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

type GeneratePayrollResponse struct {
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	Requested int               `json:"requested"`
	Generated int               `json:"generated"`
	Skipped   []SkippedEmployee `json:"skipped"`
	Payrolls  []PayrollResponse `json:"payrolls"`
	Message   string            `json:"message"`
}

type PayrollFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
}

type PayrollResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeCode      *string `json:"employee_code,omitempty"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	DepartmentName    *string `json:"department_name,omitempty"`
	DesignationName   *string `json:"designation_name,omitempty"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	WorkingDays       int     `json:"working_days"`
	PresentDays       int     `json:"present_days"`
	LeaveDays         int     `json:"leave_days"`
	AbsentDays        int     `json:"absent_days"`
	TotalCalendarDays int     `json:"total_calendar_days"`
	PaidDays          int     `json:"paid_days"`
	IsProRated        bool    `json:"is_pro_rated"`
	JoiningDate       string  `json:"joining_date"`
	PerDaySalary      string  `json:"per_day_salary"`
	salary.AmountsResponse
	IsProcessed bool       `json:"is_processed"`
	ProcessedOn *time.Time `json:"processed_on,omitempty"`
	ProcessedBy *string    `json:"processed_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	amounts := salary.NewAmountsResponse(p.Components, p.Totals())
	// Payroll has no CTC of its own.
	amounts.CTC = ""
	return PayrollResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeCode:      p.EmployeeCode,
		EmployeeName:      p.EmployeeName,
		DepartmentName:    p.DepartmentName,
		DesignationName:   p.DesignationName,
		Month:             p.Month,
		Year:              p.Year,
		WorkingDays:       p.WorkingDays,
		PresentDays:       p.PresentDays,
		LeaveDays:         p.LeaveDays,
		AbsentDays:        p.AbsentDays,
		TotalCalendarDays: p.TotalCalendarDays,
		PaidDays:          p.PaidDays,
		IsProRated:        p.IsProRated,
		JoiningDate:       p.JoiningDate.Format(validator.DateLayout),
		PerDaySalary:      p.PerDaySalary.StringFixed(2),
		AmountsResponse:   amounts,
		IsProcessed:       p.IsProcessed,
		ProcessedOn:       p.ProcessedOn,
		ProcessedBy:       p.ProcessedBy,
		CreatedAt:         p.CreatedAt,
	}
}
