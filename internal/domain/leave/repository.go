package leave

import "context"

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
}

type LeaveBalanceRepository interface {
	// CreateIfNotExists inserts the balance unless one exists for the same employee, type and year.
	CreateIfNotExists(ctx context.Context, balance LeaveBalance) (bool, error)
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	// GetForUpdate locks the balance row for the rest of the surrounding transaction.
	GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	UpdateUsage(ctx context.Context, balance LeaveBalance) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}
