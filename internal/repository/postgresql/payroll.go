package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.salary_id, p.month, p.year,
		   p.working_days, p.present_days, p.leave_days, p.absent_days, p.total_calendar_days,
		   p.paid_days, p.is_pro_rated, p.joining_date, p.per_day_salary,
		   p.basic_salary, p.hra, p.conveyance_allowance, p.medical_allowance, p.special_allowance, p.other_allowances,
		   p.pf, p.esi, p.professional_tax, p.tds, p.other_deductions,
		   p.gross_salary, p.total_deductions, p.net_salary,
		   p.is_processed, p.processed_on, p.processed_by, p.created_at, p.created_by,
		   e.employee_code, e.first_name || ' ' || e.last_name, d.name, g.title
	FROM payrolls p
	JOIN employees e ON e.id = p.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN designations g ON g.id = e.designation_id
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	dest := []any{
		&p.ID, &p.EmployeeID, &p.SalaryID, &p.Month, &p.Year,
		&p.WorkingDays, &p.PresentDays, &p.LeaveDays, &p.AbsentDays, &p.TotalCalendarDays,
		&p.PaidDays, &p.IsProRated, &p.JoiningDate, &p.PerDaySalary,
	}
	dest = append(dest, componentDest(&p.Components)...)
	dest = append(dest,
		&p.GrossSalary, &p.TotalDeductions, &p.NetSalary,
		&p.IsProcessed, &p.ProcessedOn, &p.ProcessedBy, &p.CreatedAt, &p.CreatedBy,
		&p.EmployeeCode, &p.EmployeeName, &p.DepartmentName, &p.DesignationName,
	)
	err := row.Scan(dest...)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO payrolls (
			employee_id, salary_id, month, year,
			working_days, present_days, leave_days, absent_days, total_calendar_days,
			paid_days, is_pro_rated, joining_date, per_day_salary,
			` + componentColumns + `,
			gross_salary, total_deductions, net_salary,
			is_processed, processed_on, processed_by, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			$25, $26, $27, $28, $29, $30, $31
		)
		ON CONFLICT ON CONSTRAINT uk_payroll_employee_period DO NOTHING
		RETURNING id, created_at
	`
	args := []any{
		p.EmployeeID, p.SalaryID, p.Month, p.Year,
		p.WorkingDays, p.PresentDays, p.LeaveDays, p.AbsentDays, p.TotalCalendarDays,
		p.PaidDays, p.IsProRated, p.JoiningDate, p.PerDaySalary,
	}
	args = append(args, componentArgs(p.Components)...)
	args = append(args, p.GrossSalary, p.TotalDeductions, p.NetSalary, p.IsProcessed, p.ProcessedOn, p.ProcessedBy, p.CreatedBy)

	if err := q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		// A concurrent generation already took the period.
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}
	return p, nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3)`,
		employeeID, month, year,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return exists, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	p, err := scanPayroll(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return payroll.Payroll{}, mapNoRows(err, payroll.ErrPayrollNotFound)
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	var args []any
	argIdx := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
	}

	query := payrollSelect + " WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY p.year DESC, p.month DESC, e.employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	payrolls := []payroll.Payroll{}
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
