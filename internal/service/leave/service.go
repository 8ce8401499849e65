package leave

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	txManager database.TxManager
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	balanceService *BalanceService
	requestService *RequestService
	clock          clock.Clock
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest, createdBy string) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	lt := leave.LeaveType{
		Name:               req.Name,
		Description:        req.Description,
		DefaultDaysPerYear: req.DefaultDaysPerYear,
		IsPaid:             true,
		IsActive:           true,
		CreatedBy:          createdBy,
	}
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	created, err := l.LeaveTypeRepository.Create(ctx, lt)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	slog.Info("leave type created", "leave_type_id", created.ID, "name", created.Name)
	return leave.NewLeaveTypeResponse(created), nil
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.NewLeaveTypeResponse(lt))
	}
	return responses, nil
}

// InitializeBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) InitializeBalances(ctx context.Context, employeeID string, year int, createdBy string) (leave.InitializeBalancesResponse, error) {
	req := leave.InitializeBalancesRequest{EmployeeID: employeeID, Year: year}
	if err := req.Validate(); err != nil {
		return leave.InitializeBalancesResponse{}, err
	}
	if err := l.ensureEmployee(ctx, employeeID); err != nil {
		return leave.InitializeBalancesResponse{}, err
	}

	var created int
	err := l.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = l.balanceService.Initialize(ctx, employeeID, year, createdBy)
		return err
	})
	if err != nil {
		return leave.InitializeBalancesResponse{}, err
	}

	balances, err := l.GetBalances(ctx, employeeID, year)
	if err != nil {
		return leave.InitializeBalancesResponse{}, err
	}
	return leave.InitializeBalancesResponse{Created: created, Balances: balances}, nil
}

// InitializeBalancesForActiveEmployees implements leave.LeaveService.
func (l *LeaveServiceImpl) InitializeBalancesForActiveEmployees(ctx context.Context, year int) (int, error) {
	return l.balanceService.InitializeForActiveEmployees(ctx, year)
}

// GetBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := l.LeaveBalanceRepository.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.NewLeaveBalanceResponse(b))
	}
	return responses, nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest, createdBy string) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	days, err := leave.CalculateDays(start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if _, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	numberOfDays := decimal.NewFromInt(int64(days))

	var created leave.LeaveRequest
	err = l.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := l.requestService.CheckBalance(ctx, req.EmployeeID, req.LeaveTypeID, numberOfDays); err != nil {
			return err
		}

		var err error
		created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID:   req.EmployeeID,
			LeaveTypeID:  req.LeaveTypeID,
			StartDate:    dateOnly(start),
			EndDate:      dateOnly(end),
			NumberOfDays: numberOfDays,
			Reason:       req.Reason,
			Status:       leave.StatusPending,
			CreatedBy:    createdBy,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request created",
		"leave_request_id", created.ID,
		"employee_id", created.EmployeeID,
		"days", days,
	)
	return leave.NewLeaveRequestResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ApproveLeaveRequest, approver string) (leave.LeaveRequestResponse, error) {
	var decided leave.LeaveRequest
	err := l.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		decided, err = l.requestService.Decide(ctx, req.ID, req.IsApproved, req.Comments, approver)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request decided", "leave_request_id", decided.ID, "status", decided.Status, "approver", approver)
	return l.GetLeaveRequest(ctx, decided.ID)
}

// CancelLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, id string, canceller string) (leave.LeaveRequestResponse, error) {
	var cancelled leave.LeaveRequest
	err := l.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = l.requestService.Cancel(ctx, id, canceller)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request cancelled", "leave_request_id", cancelled.ID)
	return l.GetLeaveRequest(ctx, cancelled.ID)
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	r, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(r), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// ListPendingLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPendingLeaveRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	pending := leave.StatusPending
	return l.ListLeaveRequests(ctx, leave.LeaveRequestFilter{Status: &pending})
}

func (l *LeaveServiceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func NewLeaveService(
	txManager database.TxManager,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	balanceService := NewBalanceService(leaveTypeRepository, leaveBalanceRepository, employeeRepository)
	return &LeaveServiceImpl{
		txManager:              txManager,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		balanceService:         balanceService,
		requestService:         NewRequestService(leaveRequestRepository, leaveBalanceRepository, balanceService, clk),
		clock:                  clk,
	}
}
