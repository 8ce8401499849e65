package leave

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound  = apperror.NotFound("Leave request not found")
	ErrLeaveTypeNotFound     = apperror.NotFound("Leave type not found")
	ErrLeaveBalanceNotFound  = apperror.NotFound("Leave balance not found")
	ErrEmployeeNotFound      = apperror.NotFound("Employee not found")
	ErrEndBeforeStart        = apperror.Validation("End date cannot be before start date")
	ErrInsufficientBalance   = apperror.InsufficientBalance("Insufficient leave balance")
	ErrNotPendingForApproval = apperror.InvalidState("Only pending leave requests can be approved/rejected")
	ErrNotPendingForCancel   = apperror.InvalidState("Only pending leave requests can be cancelled")
	ErrLeaveTypeNameExists   = apperror.Duplicate("Leave type name already exists")
)
