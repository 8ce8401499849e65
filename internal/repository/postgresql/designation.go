package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

const designationColumns = `id, title, code, description, level, is_active, created_at, created_by, updated_at, updated_by`

func scanDesignation(row pgx.Row) (designation.Designation, error) {
	var d designation.Designation
	err := row.Scan(&d.ID, &d.Title, &d.Code, &d.Description, &d.Level, &d.IsActive, &d.CreatedAt, &d.CreatedBy, &d.UpdatedAt, &d.UpdatedBy)
	return d, err
}

func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO designations (title, code, description, level, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + designationColumns
	created, err := scanDesignation(q.QueryRow(ctx, query, d.Title, d.Code, d.Description, d.Level, d.IsActive, d.CreatedBy))
	if err != nil {
		if _, ok := uniqueViolationOn(err); ok {
			return designation.Designation{}, designation.ErrDesignationCodeExists
		}
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}
	return created, nil
}

func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	d, err := scanDesignation(q.QueryRow(ctx, `SELECT `+designationColumns+` FROM designations WHERE id = $1`, id))
	if err != nil {
		return designation.Designation{}, mapNoRows(err, designation.ErrDesignationNotFound)
	}
	return d, nil
}

func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+designationColumns+` FROM designations ORDER BY level, title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	designations := []designation.Designation{}
	for rows.Next() {
		d, err := scanDesignation(rows)
		if err != nil {
			return nil, err
		}
		designations = append(designations, d)
	}
	return designations, rows.Err()
}

func (r *designationRepositoryImpl) Update(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE designations SET title = $2, code = $3, description = $4, level = $5, is_active = $6, updated_by = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + designationColumns
	updated, err := scanDesignation(q.QueryRow(ctx, query, d.ID, d.Title, d.Code, d.Description, d.Level, d.IsActive, d.UpdatedBy))
	if err != nil {
		if _, ok := uniqueViolationOn(err); ok {
			return designation.Designation{}, designation.ErrDesignationCodeExists
		}
		return designation.Designation{}, mapNoRows(err, designation.ErrDesignationNotFound)
	}
	return updated, nil
}

func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return designation.ErrDesignationNotFound
	}
	return nil
}
