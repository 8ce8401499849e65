package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
)

// SystemUser is recorded as the creator of balances opened implicitly.
const SystemUser = "System"

type BalanceService struct {
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveBalanceRepo leave.LeaveBalanceRepository
	employeeRepo     employee.EmployeeRepository
}

func NewBalanceService(leaveTypeRepo leave.LeaveTypeRepository, leaveBalanceRepo leave.LeaveBalanceRepository, employeeRepo employee.EmployeeRepository) *BalanceService {
	return &BalanceService{
		leaveTypeRepo:    leaveTypeRepo,
		leaveBalanceRepo: leaveBalanceRepo,
		employeeRepo:     employeeRepo,
	}
}

// Initialize opens a balance for every active leave type the employee has none for in year.
// Running it again is a no-op. It returns the number of balances created.
func (b *BalanceService) Initialize(ctx context.Context, employeeID string, year int, createdBy string) (int, error) {
	leaveTypes, err := b.leaveTypeRepo.List(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list active leave types: %w", err)
	}

	created := 0
	for _, lt := range leaveTypes {
		inserted, err := b.leaveBalanceRepo.CreateIfNotExists(ctx, leave.NewLeaveBalance(employeeID, lt, year, createdBy))
		if err != nil {
			return created, fmt.Errorf("failed to create %s balance: %w", lt.Name, err)
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		slog.Info("leave balances initialized", "employee_id", employeeID, "year", year, "created", created)
	}
	return created, nil
}

// InitializeForActiveEmployees runs Initialize for every active employee.
// A failing employee is logged and does not stop the others.
func (b *BalanceService) InitializeForActiveEmployees(ctx context.Context, year int) (int, error) {
	active := employee.StatusActive
	employees, err := b.employeeRepo.List(ctx, employee.EmployeeFilter{Status: &active})
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	total := 0
	var errs []error
	for _, emp := range employees {
		n, err := b.Initialize(ctx, emp.ID, year, SystemUser)
		total += n
		if err != nil {
			slog.Error("failed to initialize leave balances", "employee_id", emp.ID, "year", year, "error", err)
			errs = append(errs, err)
		}
	}
	return total, errors.Join(errs...)
}

// Consume decrements the balance of the given type and year under a row lock.
// A missing balance is logged and ignored.
func (b *BalanceService) Consume(ctx context.Context, r leave.LeaveRequest, year int, updatedBy string) error {
	balance, err := b.leaveBalanceRepo.GetForUpdate(ctx, r.EmployeeID, r.LeaveTypeID, year)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			slog.Warn("no leave balance to decrement",
				"employee_id", r.EmployeeID,
				"leave_type_id", r.LeaveTypeID,
				"year", year,
			)
			return nil
		}
		return err
	}

	balance.Consume(r.NumberOfDays)
	balance.UpdatedBy = &updatedBy
	return b.leaveBalanceRepo.UpdateUsage(ctx, balance)
}
