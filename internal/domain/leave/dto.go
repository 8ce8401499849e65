package leave

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	DefaultDaysPerYear int     `json:"default_days_per_year"`
	IsPaid             *bool   `json:"is_paid"`
	IsActive           *bool   `json:"is_active"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	if r.DefaultDaysPerYear < 0 || r.DefaultDaysPerYear > 366 {
		errs.Add("default_days_per_year", "default_days_per_year must be between 0 and 366")
	}

	return errs.Err()
}

type LeaveTypeResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	DefaultDaysPerYear int     `json:"default_days_per_year"`
	IsPaid             bool    `json:"is_paid"`
	IsActive           bool    `json:"is_active"`
}

func NewLeaveTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID,
		Name:               lt.Name,
		Description:        lt.Description,
		DefaultDaysPerYear: lt.DefaultDaysPerYear,
		IsPaid:             lt.IsPaid,
		IsActive:           lt.IsActive,
	}
}

type InitializeBalancesRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
}

func (r *InitializeBalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidYear(r.Year) {
		errs.Add("year", "year must be between 2000 and 2100")
	}

	return errs.Err()
}

type InitializeBalancesResponse struct {
	Created  int                    `json:"created"`
	Balances []LeaveBalanceResponse `json:"balances"`
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	Year          int     `json:"year"`
	TotalDays     string  `json:"total_days"`
	UsedDays      string  `json:"used_days"`
	AvailableDays string  `json:"available_days"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		LeaveTypeID:   b.LeaveTypeID,
		LeaveTypeName: b.LeaveTypeName,
		Year:          b.Year,
		TotalDays:     b.TotalDays.StringFixed(1),
		UsedDays:      b.UsedDays.StringFixed(1),
		AvailableDays: b.AvailableDays.StringFixed(1),
	}
}

type CreateLeaveRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs.Add("leave_type_id", "leave_type_id is required")
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs.Add("reason", "reason must not exceed 500 characters")
	}

	return errs.Err()
}

type ApproveLeaveRequest struct {
	ID         string  `json:"-"`
	IsApproved bool    `json:"is_approved"`
	Comments   *string `json:"comments"`
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *RequestStatus
}

type LeaveRequestResponse struct {
	ID               string        `json:"id"`
	EmployeeID       string        `json:"employee_id"`
	EmployeeName     *string       `json:"employee_name,omitempty"`
	LeaveTypeID      string        `json:"leave_type_id"`
	LeaveTypeName    *string       `json:"leave_type_name,omitempty"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	NumberOfDays     string        `json:"number_of_days"`
	Reason           *string       `json:"reason,omitempty"`
	Status           RequestStatus `json:"status"`
	ApprovedOn       *time.Time    `json:"approved_on,omitempty"`
	ApprovedBy       *string       `json:"approved_by,omitempty"`
	ApprovalComments *string       `json:"approval_comments,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		LeaveTypeID:      r.LeaveTypeID,
		LeaveTypeName:    r.LeaveTypeName,
		StartDate:        r.StartDate.Format(validator.DateLayout),
		EndDate:          r.EndDate.Format(validator.DateLayout),
		NumberOfDays:     r.NumberOfDays.StringFixed(1),
		Reason:           r.Reason,
		Status:           r.Status,
		ApprovedOn:       r.ApprovedOn,
		ApprovedBy:       r.ApprovedBy,
		ApprovalComments: r.ApprovalComments,
		CreatedAt:        r.CreatedAt,
	}
}
