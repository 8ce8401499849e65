package offer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/email"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
	"github.com/workaxis/hrms-backend-go/internal/pkg/storage"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type OfferLetterServiceImpl struct {
	txManager       database.TxManager
	offerRepo       offer.OfferLetterRepository
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	templateRepo    template.TemplateRepository
	salaryRepo      salary.SalaryRepository
	renderer        offer.DocumentRenderer
	fileStorage     storage.FileStorage
	mailer          email.EmailService
	publisher       events.Publisher
	clock           clock.Clock
	companyName     string
}

func NewOfferLetterService(
	txManager database.TxManager,
	offerRepo offer.OfferLetterRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
	templateRepo template.TemplateRepository,
	salaryRepo salary.SalaryRepository,
	renderer offer.DocumentRenderer,
	fileStorage storage.FileStorage,
	mailer email.EmailService,
	publisher events.Publisher,
	clk clock.Clock,
	companyName string,
) offer.OfferLetterService {
	if companyName == "" {
		companyName = offer.DefaultCompanyName
	}
	return &OfferLetterServiceImpl{
		txManager:       txManager,
		offerRepo:       offerRepo,
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		templateRepo:    templateRepo,
		salaryRepo:      salaryRepo,
		renderer:        renderer,
		fileStorage:     fileStorage,
		mailer:          mailer,
		publisher:       publisher,
		clock:           clk,
		companyName:     companyName,
	}
}

// CreateOfferLetter implements offer.OfferLetterService.
func (s *OfferLetterServiceImpl) CreateOfferLetter(ctx context.Context, req offer.CreateOfferLetterRequest, createdBy string) (offer.OfferLetterResponse, error) {
	if err := req.Validate(); err != nil {
		return offer.OfferLetterResponse{}, err
	}

	if req.EmployeeID != nil {
		linked, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return offer.OfferLetterResponse{}, offer.ErrEmployeeNotFound
			}
			return offer.OfferLetterResponse{}, err
		}
		if linked.Status != employee.StatusDraft {
			return offer.OfferLetterResponse{}, offer.ErrEmployeeNotDraft
		}
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}
	desig, err := s.designationRepo.GetByID(ctx, req.DesignationID)
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)
	now := s.clock.Now()

	o := offer.OfferLetter{
		CandidateName:    strings.TrimSpace(req.CandidateName),
		CandidateEmail:   strings.TrimSpace(req.CandidateEmail),
		CandidatePhone:   req.CandidatePhone,
		CandidateAddress: req.CandidateAddress,
		DepartmentID:     dept.ID,
		DesignationID:    desig.ID,
		JoiningDate:      joiningDate,
		Location:         req.Location,
		Components:       req.Components,
		Status:           offer.StatusDraft,
		EmployeeID:       req.EmployeeID,
		GeneratedOn:      now,
		GeneratedBy:      createdBy,
		CreatedBy:        createdBy,
	}
	// Placeholders read the totals, so they must be current before rendering.
	o.Recalculate()

	tmpl, err := s.resolveTemplate(ctx, req.TemplateID)
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}
	if tmpl != nil {
		o.TemplateID = &tmpl.ID
		result := template.Render(tmpl.Content, offer.BuildPlaceholders(o, offer.PlaceholderContext{
			DepartmentName:   dept.Name,
			DesignationTitle: desig.Title,
			CompanyName:      s.companyName,
			Now:              now,
		}))
		o.GeneratedContent = result.Content
		o.UnresolvedPlaceholders = result.Unresolved

		if len(result.Unresolved) > 0 {
			slog.Warn("offer letter has unresolved placeholders",
				"candidate_email", o.CandidateEmail,
				"template_id", tmpl.ID,
				"placeholders", result.Unresolved,
			)
		}
	}

	created, err := s.offerRepo.Create(ctx, o)
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}

	slog.Info("offer letter created", "offer_letter_id", created.ID, "candidate_name", created.CandidateName, "created_by", createdBy)
	return offer.NewOfferLetterResponse(created), nil
}

// resolveTemplate returns the named template, else the default one, else nil.
func (s *OfferLetterServiceImpl) resolveTemplate(ctx context.Context, templateID *string) (*template.Template, error) {
	if templateID != nil {
		t, err := s.templateRepo.GetByID(ctx, *templateID)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	t, err := s.templateRepo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, template.ErrDefaultTemplateNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// BulkGenerateOfferLetters implements offer.OfferLetterService.
// Candidates are processed one after another and a failure does not stop the rest.
func (s *OfferLetterServiceImpl) BulkGenerateOfferLetters(ctx context.Context, req offer.BulkGenerateRequest, createdBy string) (offer.BulkGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return offer.BulkGenerateResponse{}, err
	}

	resp := offer.BulkGenerateResponse{
		Requested:    len(req.Candidates),
		OfferLetters: []offer.OfferLetterResponse{},
	}

	for _, candidate := range req.Candidates {
		if candidate.TemplateID == nil {
			candidate.TemplateID = req.TemplateID
		}

		created, err := s.CreateOfferLetter(ctx, candidate, createdBy)
		if err != nil {
			slog.Warn("bulk offer letter failed", "candidate_email", candidate.CandidateEmail, "error", err)
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %s", candidate.CandidateName, failureMessage(err)))
			continue
		}
		resp.OfferLetters = append(resp.OfferLetters, created)
	}
	resp.Generated = len(resp.OfferLetters)

	switch {
	case resp.Generated == 0:
		return offer.BulkGenerateResponse{}, apperror.Withf(offer.ErrNoOffersGenerated,
			"Failed to generate any offer letters. %s", strings.Join(resp.Errors, "; "))
	case len(resp.Errors) > 0:
		resp.Message = fmt.Sprintf("Generated %d out of %d offer letters. Errors: %s",
			resp.Generated, resp.Requested, strings.Join(resp.Errors, "; "))
	default:
		resp.Message = fmt.Sprintf("Successfully generated %d offer letters", resp.Generated)
	}

	slog.Info("bulk offer letters generated", "requested", resp.Requested, "generated", resp.Generated)
	return resp, nil
}

func failureMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	return apperror.ErrInternal.Message
}

// UpdateStatus implements offer.OfferLetterService.
func (s *OfferLetterServiceImpl) UpdateStatus(ctx context.Context, req offer.UpdateStatusRequest, updatedBy string) (offer.OfferLetterResponse, error) {
	if err := req.Validate(); err != nil {
		return offer.OfferLetterResponse{}, err
	}
	next := offer.Status(req.Status)
	if next == offer.StatusAccepted {
		return offer.OfferLetterResponse{}, offer.ErrAcceptViaEndpoint
	}

	var updated offer.OfferLetter
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := s.offerRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !offer.CanTransition(o.Status, next) {
			return apperror.Withf(offer.ErrInvalidTransition,
				"Cannot change offer letter status from %s to %s", o.Status.Label(), next.Label())
		}

		o.Status = next
		if next == offer.StatusSent {
			sentOn := s.clock.Now()
			o.SentOn = &sentOn
		}
		o.UpdatedBy = &updatedBy

		updated, err = s.offerRepo.Update(ctx, o)
		return err
	})
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}

	slog.Info("offer letter status updated", "offer_letter_id", updated.ID, "status", updated.Status, "updated_by", updatedBy)

	if updated.Status == offer.StatusSent {
		s.sendToCandidate(ctx, updated)
	}
	return offer.NewOfferLetterResponse(updated), nil
}

// sendToCandidate mails the generated letter. Failures are logged only.
func (s *OfferLetterServiceImpl) sendToCandidate(ctx context.Context, o offer.OfferLetter) {
	if s.mailer == nil {
		return
	}
	designationTitle := ""
	if o.DesignationTitle != nil {
		designationTitle = *o.DesignationTitle
	}

	err := s.mailer.SendOfferLetter(ctx, email.OfferLetterMessage{
		To:            o.CandidateEmail,
		CandidateName: o.CandidateName,
		CompanyName:   s.companyName,
		Designation:   designationTitle,
		Content:       o.GeneratedContent,
	})
	if err != nil {
		slog.Error("failed to email offer letter", "offer_letter_id", o.ID, "to", o.CandidateEmail, "error", err)
	}
}

// GetOfferLetter implements offer.OfferLetterService.
func (s *OfferLetterServiceImpl) GetOfferLetter(ctx context.Context, id string) (offer.OfferLetterResponse, error) {
	o, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return offer.OfferLetterResponse{}, err
	}
	return offer.NewOfferLetterResponse(o), nil
}

// ListOfferLetters implements offer.OfferLetterService.
func (s *OfferLetterServiceImpl) ListOfferLetters(ctx context.Context, filter offer.OfferLetterFilter) ([]offer.OfferLetterResponse, error) {
	offers, err := s.offerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]offer.OfferLetterResponse, 0, len(offers))
	for _, o := range offers {
		responses = append(responses, offer.NewOfferLetterResponse(o))
	}
	return responses, nil
}

// DeleteOfferLetter implements offer.OfferLetterService.
func (s *OfferLetterServiceImpl) DeleteOfferLetter(ctx context.Context, id string, deletedBy string) error {
	o, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !o.Status.IsDeletable() {
		return offer.ErrCannotDelete
	}

	if err := s.offerRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return err
	}
	slog.Info("offer letter deleted", "offer_letter_id", id, "deleted_by", deletedBy)
	return nil
}

// GeneratePDF implements offer.OfferLetterService. The file is kept in storage
// and its key recorded on the offer.
func (s *OfferLetterServiceImpl) GeneratePDF(ctx context.Context, id string, generatedBy string) (offer.OfferLetterDocument, error) {
	o, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return offer.OfferLetterDocument{}, err
	}

	content, err := s.renderer.RenderOfferLetter(o)
	if err != nil {
		slog.Error("failed to render offer letter", "offer_letter_id", id, "error", err)
		return offer.OfferLetterDocument{}, fmt.Errorf("render offer letter: %w", err)
	}

	fileName := offer.DocumentFileName(o.CandidateName)
	key := fmt.Sprintf("offer-letters/%s/%s", o.ID, fileName)

	stored, err := s.fileStorage.Save(ctx, key, bytes.NewReader(content))
	if err != nil {
		return offer.OfferLetterDocument{}, fmt.Errorf("store offer letter: %w", err)
	}

	o.FilePath = &stored
	o.UpdatedBy = &generatedBy
	if _, err := s.offerRepo.Update(ctx, o); err != nil {
		return offer.OfferLetterDocument{}, err
	}

	return offer.OfferLetterDocument{
		FileName: fileName,
		FilePath: stored,
		Content:  content,
	}, nil
}
