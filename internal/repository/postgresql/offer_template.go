package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

const templateColumns = `id, name, description, content, category, is_active, is_default, version,
	created_at, created_by, updated_at, updated_by, deleted_at`

func scanTemplate(row pgx.Row) (template.Template, error) {
	var t template.Template
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Content, &t.Category, &t.IsActive, &t.IsDefault, &t.Version,
		&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &t.UpdatedBy, &t.DeletedAt,
	)
	return t, err
}

func templateUniqueError(err error) error {
	if constraint, ok := uniqueViolationOn(err); ok {
		if constraint == "uk_offer_templates_default" {
			return template.ErrDefaultConflict
		}
		return template.ErrTemplateNameExists
	}
	return err
}

// Create implements template.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t template.Template) (template.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO offer_letter_templates (name, description, content, category, is_active, is_default, version, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + templateColumns
	created, err := scanTemplate(q.QueryRow(ctx, query,
		t.Name, t.Description, t.Content, t.Category, t.IsActive, t.IsDefault, t.Version, t.CreatedBy,
	))
	if err != nil {
		if mapped := templateUniqueError(err); mapped != err {
			return template.Template{}, mapped
		}
		return template.Template{}, fmt.Errorf("failed to create template: %w", err)
	}
	return created, nil
}

// Update implements template.TemplateRepository.
func (r *templateRepositoryImpl) Update(ctx context.Context, t template.Template) (template.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE offer_letter_templates SET
			name = $2, description = $3, content = $4, category = $5, is_active = $6, is_default = $7,
			version = $8, updated_by = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + templateColumns
	updated, err := scanTemplate(q.QueryRow(ctx, query,
		t.ID, t.Name, t.Description, t.Content, t.Category, t.IsActive, t.IsDefault, t.Version, t.UpdatedBy,
	))
	if err != nil {
		if mapped := templateUniqueError(err); mapped != err {
			return template.Template{}, mapped
		}
		return template.Template{}, mapNoRows(err, template.ErrTemplateNotFound)
	}
	return updated, nil
}

// SoftDelete implements template.TemplateRepository.
func (r *templateRepositoryImpl) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE offer_letter_templates SET deleted_at = NOW(), is_active = FALSE, updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return template.ErrTemplateNotFound
	}
	return nil
}

// GetByID implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string) (template.Template, error) {
	q := GetQuerier(ctx, r.db)
	t, err := scanTemplate(q.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM offer_letter_templates WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return template.Template{}, mapNoRows(err, template.ErrTemplateNotFound)
	}
	return t, nil
}

// GetDefault implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetDefault(ctx context.Context) (template.Template, error) {
	q := GetQuerier(ctx, r.db)
	t, err := scanTemplate(q.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM offer_letter_templates WHERE is_default AND is_active AND deleted_at IS NULL`))
	if err != nil {
		return template.Template{}, mapNoRows(err, template.ErrDefaultTemplateNotFound)
	}
	return t, nil
}

// List implements template.TemplateRepository.
func (r *templateRepositoryImpl) List(ctx context.Context) ([]template.Template, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx,
		`SELECT `+templateColumns+` FROM offer_letter_templates WHERE deleted_at IS NULL ORDER BY is_default DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	templates := []template.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// ExistsByName implements template.TemplateRepository.
func (r *templateRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM offer_letter_templates
			WHERE name = $1 AND deleted_at IS NULL AND ($2::uuid IS NULL OR id <> $2::uuid)
		)
	`, name, excludeID).Scan(&exists)
	return exists, err
}

// UnsetDefault implements template.TemplateRepository.
func (r *templateRepositoryImpl) UnsetDefault(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `
		UPDATE offer_letter_templates SET is_default = FALSE, updated_at = NOW()
		WHERE is_default AND deleted_at IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to unset default template: %w", err)
	}
	return nil
}
