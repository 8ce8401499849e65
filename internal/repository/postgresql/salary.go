package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salarySelect = `
	SELECT s.id, s.employee_id, s.offer_letter_id,
		   s.basic_salary, s.hra, s.conveyance_allowance, s.medical_allowance, s.special_allowance, s.other_allowances,
		   s.pf, s.esi, s.professional_tax, s.tds, s.other_deductions,
		   s.gross_salary, s.total_deductions, s.net_salary, s.ctc,
		   s.effective_from, s.effective_to, s.is_active,
		   s.created_at, s.created_by, s.updated_at, s.updated_by,
		   e.employee_code, e.first_name || ' ' || e.last_name
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id
`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	dest := []any{&s.ID, &s.EmployeeID, &s.OfferLetterID}
	dest = append(dest, componentDest(&s.Components)...)
	dest = append(dest,
		&s.GrossSalary, &s.TotalDeductions, &s.NetSalary, &s.CTC,
		&s.EffectiveFrom, &s.EffectiveTo, &s.IsActive,
		&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy,
		&s.EmployeeCode, &s.EmployeeName,
	)
	err := row.Scan(dest...)
	return s, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO salaries (
			employee_id, offer_letter_id, ` + componentColumns + `,
			gross_salary, total_deductions, net_salary, ctc,
			effective_from, effective_to, is_active, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING id, created_at, updated_at
	`
	args := []any{s.EmployeeID, s.OfferLetterID}
	args = append(args, componentArgs(s.Components)...)
	args = append(args, s.GrossSalary, s.TotalDeductions, s.NetSalary, s.CTC, s.EffectiveFrom, s.EffectiveTo, s.IsActive, s.CreatedBy)

	if err := q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if constraint, ok := uniqueViolationOn(err); ok && constraint == "uk_salaries_active_employee" {
			return salary.Salary{}, salary.ErrActiveSalaryConflict
		}
		return salary.Salary{}, fmt.Errorf("failed to create salary: %w", err)
	}
	return s, nil
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE salaries SET
			basic_salary = $2, hra = $3, conveyance_allowance = $4, medical_allowance = $5,
			special_allowance = $6, other_allowances = $7,
			pf = $8, esi = $9, professional_tax = $10, tds = $11, other_deductions = $12,
			gross_salary = $13, total_deductions = $14, net_salary = $15, ctc = $16,
			effective_from = $17, effective_to = $18, is_active = $19,
			updated_by = $20, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{s.ID}
	args = append(args, componentArgs(s.Components)...)
	args = append(args, s.GrossSalary, s.TotalDeductions, s.NetSalary, s.CTC, s.EffectiveFrom, s.EffectiveTo, s.IsActive, s.UpdatedBy)

	if err := q.QueryRow(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return salary.Salary{}, mapNoRows(err, salary.ErrSalaryNotFound)
	}
	return s, nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)
	s, err := scanSalary(q.QueryRow(ctx, salarySelect+` WHERE s.id = $1`, id))
	if err != nil {
		return salary.Salary{}, mapNoRows(err, salary.ErrSalaryNotFound)
	}
	return s, nil
}

// GetActiveByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)
	s, err := scanSalary(q.QueryRow(ctx, salarySelect+` WHERE s.employee_id = $1 AND s.is_active`, employeeID))
	if err != nil {
		return salary.Salary{}, mapNoRows(err, salary.ErrActiveSalaryNotFound)
	}
	return s, nil
}

// ListByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, salarySelect+` WHERE s.employee_id = $1 ORDER BY s.effective_from DESC, s.created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	salaries := []salary.Salary{}
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}

// DeactivateActive implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) DeactivateActive(ctx context.Context, employeeID string, effectiveTo time.Time, updatedBy string) (int64, error) {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE salaries SET is_active = FALSE, effective_to = $2, updated_by = $3, updated_at = NOW()
		WHERE employee_id = $1 AND is_active
	`, employeeID, effectiveTo, updatedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate salaries: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
