package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceSelect = `
	SELECT b.id, b.employee_id, b.leave_type_id, b.year, b.total_days, b.used_days, b.available_days,
		   b.created_at, b.created_by, b.updated_at, b.updated_by, t.name
	FROM leave_balances b
	JOIN leave_types t ON t.id = b.leave_type_id
`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.TotalDays, &b.UsedDays, &b.AvailableDays,
		&b.CreatedAt, &b.CreatedBy, &b.UpdatedAt, &b.UpdatedBy, &b.LeaveTypeName,
	)
	return b, err
}

// CreateIfNotExists implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) CreateIfNotExists(ctx context.Context, balance leave.LeaveBalance) (bool, error) {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		INSERT INTO leave_balances (employee_id, leave_type_id, year, total_days, used_days, available_days, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT uk_leave_balance_employee_type_year DO NOTHING
	`, balance.EmployeeID, balance.LeaveTypeID, balance.Year, balance.TotalDays, balance.UsedDays, balance.AvailableDays, balance.CreatedBy)
	if err != nil {
		return false, fmt.Errorf("failed to create leave balance: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	b, err := scanLeaveBalance(q.QueryRow(ctx,
		leaveBalanceSelect+` WHERE b.employee_id = $1 AND b.leave_type_id = $2 AND b.year = $3`,
		employeeID, leaveTypeID, year))
	if err != nil {
		return leave.LeaveBalance{}, mapNoRows(err, leave.ErrLeaveBalanceNotFound)
	}
	return b, nil
}

// GetForUpdate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	b, err := scanLeaveBalance(q.QueryRow(ctx,
		leaveBalanceSelect+` WHERE b.employee_id = $1 AND b.leave_type_id = $2 AND b.year = $3 FOR UPDATE OF b`,
		employeeID, leaveTypeID, year))
	if err != nil {
		return leave.LeaveBalance{}, mapNoRows(err, leave.ErrLeaveBalanceNotFound)
	}
	return b, nil
}

// ListByEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, leaveBalanceSelect+` WHERE b.employee_id = $1 AND b.year = $2 ORDER BY t.name`, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	balances := []leave.LeaveBalance{}
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// UpdateUsage implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) UpdateUsage(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE leave_balances SET used_days = $2, available_days = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $1
	`, balance.ID, balance.UsedDays, balance.AvailableDays, balance.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveBalanceNotFound
	}
	return nil
}
