package leave

import "context"

type LeaveService interface {
	// Leave types
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest, createdBy string) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)

	// Balances
	InitializeBalances(ctx context.Context, employeeID string, year int, createdBy string) (InitializeBalancesResponse, error)
	InitializeBalancesForActiveEmployees(ctx context.Context, year int) (int, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)

	// Requests
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest, createdBy string) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, req ApproveLeaveRequest, approver string) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, id string, canceller string) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	ListPendingLeaveRequests(ctx context.Context) ([]LeaveRequestResponse, error)
}
