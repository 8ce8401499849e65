package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveType entity
type LeaveType struct {
	ID                 string
	Name               string
	Description        *string
	DefaultDaysPerYear int
	IsPaid             bool
	IsActive           bool
	CreatedAt          time.Time
	CreatedBy          string
	UpdatedAt          time.Time
}

// LeaveBalance holds one employee's allowance of one leave type for one year.
// AvailableDays always equals TotalDays - UsedDays.
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	Year          int
	TotalDays     decimal.Decimal
	UsedDays      decimal.Decimal
	AvailableDays decimal.Decimal
	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	UpdatedBy     *string

	// Joined fields
	LeaveTypeName *string
}

// NewLeaveBalance opens a fresh balance seeded from the type's yearly default.
func NewLeaveBalance(employeeID string, lt LeaveType, year int, createdBy string) LeaveBalance {
	total := decimal.NewFromInt(int64(lt.DefaultDaysPerYear))
	return LeaveBalance{
		EmployeeID:    employeeID,
		LeaveTypeID:   lt.ID,
		Year:          year,
		TotalDays:     total,
		UsedDays:      decimal.Zero,
		AvailableDays: total,
		CreatedBy:     createdBy,
	}
}

// Consume records days as used. It does not clamp at zero.
func (b *LeaveBalance) Consume(days decimal.Decimal) {
	b.UsedDays = b.UsedDays.Add(days)
	b.AvailableDays = b.AvailableDays.Sub(days)
}

// LeaveRequest entity
type LeaveRequest struct {
	ID               string
	EmployeeID       string
	LeaveTypeID      string
	StartDate        time.Time
	EndDate          time.Time
	NumberOfDays     decimal.Decimal
	Reason           *string
	Status           RequestStatus
	ApprovedOn       *time.Time
	ApprovedBy       *string
	ApprovalComments *string
	CreatedAt        time.Time
	CreatedBy        string
	UpdatedAt        time.Time
	UpdatedBy        *string

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
}

// CalculateDays counts calendar days from start to end inclusive.
// Weekends and holidays are not excluded.
func CalculateDays(start, end time.Time) (int, error) {
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if endDate.Before(startDate) {
		return 0, ErrEndBeforeStart
	}
	return int(endDate.Sub(startDate).Hours()/24) + 1, nil
}
