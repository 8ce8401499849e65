package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_code, e.first_name, e.last_name, e.email, e.phone, e.address,
		   e.date_of_birth, e.gender, e.department_id, e.designation_id, e.reporting_manager_id,
		   e.joining_date, e.relieving_date, e.status,
		   e.created_at, e.created_by, e.updated_at, e.updated_by, e.deleted_at,
		   d.name, g.title
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN designations g ON g.id = e.designation_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address,
		&e.DateOfBirth, &e.Gender, &e.DepartmentID, &e.DesignationID, &e.ReportingManagerID,
		&e.JoiningDate, &e.RelievingDate, &e.Status,
		&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy, &e.DeletedAt,
		&e.DepartmentName, &e.DesignationName,
	)
	return e, err
}

func employeeUniqueError(err error, codeErr error) error {
	if constraint, ok := uniqueViolationOn(err); ok {
		switch constraint {
		case "uk_employees_code":
			return codeErr
		case "uk_employees_email":
			return employee.ErrEmailExists
		}
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			employee_code, first_name, last_name, email, phone, address,
			date_of_birth, gender, department_id, designation_id, reporting_manager_id,
			joining_date, relieving_date, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.Phone, newEmployee.Address, newEmployee.DateOfBirth, newEmployee.Gender,
		newEmployee.DepartmentID, newEmployee.DesignationID, newEmployee.ReportingManagerID,
		newEmployee.JoiningDate, newEmployee.RelievingDate, newEmployee.Status, newEmployee.CreatedBy,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		if mapped := employeeUniqueError(err, employee.ErrEmployeeCodeExists); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees SET
			employee_code = $2, first_name = $3, last_name = $4, email = $5, phone = $6, address = $7,
			date_of_birth = $8, gender = $9, department_id = $10, designation_id = $11,
			reporting_manager_id = $12, joining_date = $13, relieving_date = $14, status = $15,
			updated_by = $16, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeCode, e.FirstName, e.LastName, e.Email, e.Phone, e.Address,
		e.DateOfBirth, e.Gender, e.DepartmentID, e.DesignationID,
		e.ReportingManagerID, e.JoiningDate, e.RelievingDate, e.Status,
		e.UpdatedBy,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if mapped := employeeUniqueError(err, employee.ErrEmployeeCodeConflict); mapped != err {
			return employee.Employee{}, mapped
		}
		if mapped := mapNoRows(err, employee.ErrEmployeeNotFound); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return e, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL`, id))
	if err != nil {
		return employee.Employee{}, mapNoRows(err, employee.ErrEmployeeNotFound)
	}
	return e, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL FOR UPDATE OF e`, id))
	if err != nil {
		return employee.Employee{}, mapNoRows(err, employee.ErrEmployeeNotFound)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "e.deleted_at IS NULL")
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.employee_code ILIKE $%[1]d OR e.first_name ILIKE $%[1]d OR e.last_name ILIKE $%[1]d OR e.email ILIKE $%[1]d OR (e.first_name || ' ' || e.last_name) ILIKE $%[1]d)",
			argIdx))
		args = append(args, "%"+search+"%")
	}

	query := employeeSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY e.employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// ExistsByDepartmentID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByDepartmentID(ctx context.Context, departmentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE department_id = $1 AND deleted_at IS NULL)`, departmentID).Scan(&exists)
	return exists, err
}

// ExistsByDesignationID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByDesignationID(ctx context.Context, designationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE designation_id = $1 AND deleted_at IS NULL)`, designationID).Scan(&exists)
	return exists, err
}

// NextPermanentCode implements employee.EmployeeRepository. The counter is
// seeded from the highest EMP code on first use and never moves backwards.
func (r *employeeRepositoryImpl) NextPermanentCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_code_sequences (prefix, last_value)
		VALUES ($1, COALESCE((
			SELECT MAX(CAST(SUBSTRING(employee_code FROM $2) AS BIGINT))
			FROM employees
			WHERE employee_code ~ ('^' || $1 || '[0-9]+$')
		), 0) + 1)
		ON CONFLICT (prefix) DO UPDATE
			SET last_value = GREATEST(employee_code_sequences.last_value + 1, EXCLUDED.last_value)
		RETURNING last_value
	`
	var next int64
	if err := q.QueryRow(ctx, query, employee.PermanentCodePrefix, len(employee.PermanentCodePrefix)+1).Scan(&next); err != nil {
		return "", fmt.Errorf("failed to reserve employee code: %w", err)
	}
	return employee.FormatPermanentCode(next), nil
}
