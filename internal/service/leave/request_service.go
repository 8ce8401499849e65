package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
)

type RequestService struct {
	leaveRequestRepo leave.LeaveRequestRepository
	leaveBalanceRepo leave.LeaveBalanceRepository
	balances         *BalanceService
	clock            clock.Clock
}

func NewRequestService(leaveRequestRepo leave.LeaveRequestRepository, leaveBalanceRepo leave.LeaveBalanceRepository, balances *BalanceService, clk clock.Clock) *RequestService {
	return &RequestService{
		leaveRequestRepo: leaveRequestRepo,
		leaveBalanceRepo: leaveBalanceRepo,
		balances:         balances,
		clock:            clk,
	}
}

// CheckBalance ensures the current-year balance covers days, opening balances first if
// the employee has none. With no balance for the type the request goes through unchecked.
func (r *RequestService) CheckBalance(ctx context.Context, employeeID, leaveTypeID string, days decimal.Decimal) error {
	year := r.clock.Now().Year()

	balance, err := r.leaveBalanceRepo.Get(ctx, employeeID, leaveTypeID, year)
	if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
		if _, err := r.balances.Initialize(ctx, employeeID, year, SystemUser); err != nil {
			return err
		}
		balance, err = r.leaveBalanceRepo.Get(ctx, employeeID, leaveTypeID, year)
	}
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			slog.Warn("leave requested without a balance", "employee_id", employeeID, "leave_type_id", leaveTypeID, "year", year)
			return nil
		}
		return err
	}

	if balance.AvailableDays.LessThan(days) {
		return apperror.Withf(leave.ErrInsufficientBalance,
			"Insufficient leave balance. Available: %s days, Requested: %s days",
			balance.AvailableDays.String(), days.String())
	}
	return nil
}

// Decide moves a pending request to approved or rejected. Approval consumes the
// current-year balance. Call it inside a transaction.
func (r *RequestService) Decide(ctx context.Context, id string, approved bool, comments *string, approver string) (leave.LeaveRequest, error) {
	req, err := r.leaveRequestRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	next := leave.StatusRejected
	if approved {
		next = leave.StatusApproved
	}
	if !leave.CanTransition(req.Status, next) {
		return leave.LeaveRequest{}, leave.ErrNotPendingForApproval
	}

	now := r.clock.Now()
	req.Status = next
	req.ApprovedOn = &now
	req.ApprovedBy = &approver
	req.ApprovalComments = comments
	req.UpdatedBy = &approver

	if err := r.leaveRequestRepo.Update(ctx, req); err != nil {
		return leave.LeaveRequest{}, err
	}

	if approved {
		if err := r.balances.Consume(ctx, req, now.Year(), approver); err != nil {
			return leave.LeaveRequest{}, err
		}
	}
	return req, nil
}

// Cancel withdraws a pending request. Balances are untouched.
func (r *RequestService) Cancel(ctx context.Context, id string, canceller string) (leave.LeaveRequest, error) {
	req, err := r.leaveRequestRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !leave.CanTransition(req.Status, leave.StatusCancelled) {
		return leave.LeaveRequest{}, leave.ErrNotPendingForCancel
	}

	req.Status = leave.StatusCancelled
	req.UpdatedBy = &canceller
	if err := r.leaveRequestRepo.Update(ctx, req); err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
