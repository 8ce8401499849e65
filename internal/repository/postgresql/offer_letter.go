package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type offerLetterRepositoryImpl struct {
	db *database.DB
}

func NewOfferLetterRepository(db *database.DB) offer.OfferLetterRepository {
	return &offerLetterRepositoryImpl{db: db}
}

const offerLetterSelect = `
	SELECT o.id, o.candidate_name, o.candidate_email, o.candidate_phone, o.candidate_address,
		   o.department_id, o.designation_id, o.joining_date, o.location,
		   o.basic_salary, o.hra, o.conveyance_allowance, o.medical_allowance, o.special_allowance, o.other_allowances,
		   o.pf, o.esi, o.professional_tax, o.tds, o.other_deductions,
		   o.gross_salary, o.total_deductions, o.net_salary, o.ctc,
		   o.status, o.employee_id, o.template_id, o.generated_content, o.unresolved_placeholders,
		   o.file_path, o.generated_on, o.generated_by, o.sent_on, o.accepted_on,
		   o.created_at, o.created_by, o.updated_at, o.updated_by, o.deleted_at,
		   d.name, g.title, e.employee_code
	FROM offer_letters o
	LEFT JOIN departments d ON d.id = o.department_id
	LEFT JOIN designations g ON g.id = o.designation_id
	LEFT JOIN employees e ON e.id = o.employee_id
`

func scanOfferLetter(row pgx.Row) (offer.OfferLetter, error) {
	var o offer.OfferLetter
	dest := []any{
		&o.ID, &o.CandidateName, &o.CandidateEmail, &o.CandidatePhone, &o.CandidateAddress,
		&o.DepartmentID, &o.DesignationID, &o.JoiningDate, &o.Location,
	}
	dest = append(dest, componentDest(&o.Components)...)
	dest = append(dest,
		&o.GrossSalary, &o.TotalDeductions, &o.NetSalary, &o.CTC,
		&o.Status, &o.EmployeeID, &o.TemplateID, &o.GeneratedContent, &o.UnresolvedPlaceholders,
		&o.FilePath, &o.GeneratedOn, &o.GeneratedBy, &o.SentOn, &o.AcceptedOn,
		&o.CreatedAt, &o.CreatedBy, &o.UpdatedAt, &o.UpdatedBy, &o.DeletedAt,
		&o.DepartmentName, &o.DesignationTitle, &o.EmployeeCode,
	)
	err := row.Scan(dest...)
	return o, err
}

// Create implements offer.OfferLetterRepository.
func (r *offerLetterRepositoryImpl) Create(ctx context.Context, o offer.OfferLetter) (offer.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO offer_letters (
			candidate_name, candidate_email, candidate_phone, candidate_address,
			department_id, designation_id, joining_date, location,
			` + componentColumns + `,
			gross_salary, total_deductions, net_salary, ctc,
			status, employee_id, template_id, generated_content, unresolved_placeholders,
			generated_on, generated_by, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25, $26, $27, COALESCE($28::text[], '{}'),
			$29, $30, $31
		) RETURNING id, created_at, updated_at
	`
	args := []any{
		o.CandidateName, o.CandidateEmail, o.CandidatePhone, o.CandidateAddress,
		o.DepartmentID, o.DesignationID, o.JoiningDate, o.Location,
	}
	args = append(args, componentArgs(o.Components)...)
	args = append(args,
		o.GrossSalary, o.TotalDeductions, o.NetSalary, o.CTC,
		o.Status, o.EmployeeID, o.TemplateID, o.GeneratedContent, o.UnresolvedPlaceholders,
		o.GeneratedOn, o.GeneratedBy, o.CreatedBy,
	)

	if err := q.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return offer.OfferLetter{}, fmt.Errorf("failed to create offer letter: %w", err)
	}
	return o, nil
}

// Update implements offer.OfferLetterRepository. Only lifecycle and document
// fields change after generation.
func (r *offerLetterRepositoryImpl) Update(ctx context.Context, o offer.OfferLetter) (offer.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE offer_letters SET
			status = $2, employee_id = $3, file_path = $4, sent_on = $5, accepted_on = $6,
			updated_by = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		o.ID, o.Status, o.EmployeeID, o.FilePath, o.SentOn, o.AcceptedOn, o.UpdatedBy,
	).Scan(&o.UpdatedAt)
	if err != nil {
		return offer.OfferLetter{}, mapNoRows(err, offer.ErrOfferLetterNotFound)
	}
	return o, nil
}

// SoftDelete implements offer.OfferLetterRepository.
func (r *offerLetterRepositoryImpl) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE offer_letters SET deleted_at = NOW(), updated_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete offer letter: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return offer.ErrOfferLetterNotFound
	}
	return nil
}

// GetByID implements offer.OfferLetterRepository.
func (r *offerLetterRepositoryImpl) GetByID(ctx context.Context, id string) (offer.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)
	o, err := scanOfferLetter(q.QueryRow(ctx, offerLetterSelect+` WHERE o.id = $1 AND o.deleted_at IS NULL`, id))
	if err != nil {
		return offer.OfferLetter{}, mapNoRows(err, offer.ErrOfferLetterNotFound)
	}
	return o, nil
}

// GetByIDForUpdate implements offer.OfferLetterRepository.
func (r *offerLetterRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (offer.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)
	o, err := scanOfferLetter(q.QueryRow(ctx, offerLetterSelect+` WHERE o.id = $1 AND o.deleted_at IS NULL FOR UPDATE OF o`, id))
	if err != nil {
		return offer.OfferLetter{}, mapNoRows(err, offer.ErrOfferLetterNotFound)
	}
	return o, nil
}

// List implements offer.OfferLetterRepository.
func (r *offerLetterRepositoryImpl) List(ctx context.Context, filter offer.OfferLetterFilter) ([]offer.OfferLetter, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"o.deleted_at IS NULL"}
	var args []any
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("o.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
	}

	query := offerLetterSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY o.generated_on DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list offer letters: %w", err)
	}
	defer rows.Close()

	offers := []offer.OfferLetter{}
	for rows.Next() {
		o, err := scanOfferLetter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer letter: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}
