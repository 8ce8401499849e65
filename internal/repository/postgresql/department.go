package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `id, name, code, description, is_active, created_at, created_by, updated_at, updated_by`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.Name, &d.Code, &d.Description, &d.IsActive, &d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy)
	return d, err
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO departments (name, code, description, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + departmentColumns
	created, err := scanDepartment(q.QueryRow(ctx, query, d.Name, d.Code, d.Description, d.IsActive, d.CreatedBy))
	if err != nil {
		if _, ok := uniqueViolationOn(err); ok {
			return department.Department{}, department.ErrDepartmentCodeExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	d, err := scanDepartment(q.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if err != nil {
		return department.Department{}, mapNoRows(err, department.ErrDepartmentNotFound)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE departments SET name = $2, code = $3, description = $4, is_active = $5, updated_by = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + departmentColumns
	updated, err := scanDepartment(q.QueryRow(ctx, query, d.ID, d.Name, d.Code, d.Description, d.IsActive, d.UpdatedBy))
	if err != nil {
		if _, ok := uniqueViolationOn(err); ok {
			return department.Department{}, department.ErrDepartmentCodeExists
		}
		return department.Department{}, mapNoRows(err, department.ErrDepartmentNotFound)
	}
	return updated, nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
