package template

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/workaxis/hrms-backend-go/internal/domain/template"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
)

type TemplateServiceImpl struct {
	txManager    database.TxManager
	templateRepo template.TemplateRepository
	clock        clock.Clock
}

func NewTemplateService(txManager database.TxManager, templateRepo template.TemplateRepository, clk clock.Clock) template.TemplateService {
	return &TemplateServiceImpl{
		txManager:    txManager,
		templateRepo: templateRepo,
		clock:        clk,
	}
}

// ListTemplates implements template.TemplateService.
func (s *TemplateServiceImpl) ListTemplates(ctx context.Context) ([]template.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]template.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, template.NewTemplateResponse(t))
	}
	return responses, nil
}

// GetTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id string) (template.TemplateResponse, error) {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return template.NewTemplateResponse(t), nil
}

// GetDefaultTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) GetDefaultTemplate(ctx context.Context) (template.TemplateResponse, error) {
	t, err := s.templateRepo.GetDefault(ctx)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return template.NewTemplateResponse(t), nil
}

// CreateTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, req template.CreateTemplateRequest, createdBy string) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var created template.Template
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.templateRepo.ExistsByName(ctx, req.Name, nil)
		if err != nil {
			return err
		}
		if exists {
			return template.ErrTemplateNameExists
		}

		if req.IsDefault {
			if err := s.templateRepo.UnsetDefault(ctx); err != nil {
				return err
			}
		}

		created, err = s.templateRepo.Create(ctx, template.Template{
			Name:        req.Name,
			Description: req.Description,
			Content:     req.Content,
			Category:    req.Category,
			IsActive:    isActive,
			IsDefault:   req.IsDefault,
			Version:     1,
			CreatedBy:   createdBy,
		})
		return err
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	slog.Info("offer letter template created", "template_id", created.ID, "name", created.Name, "is_default", created.IsDefault)
	return template.NewTemplateResponse(created), nil
}

// UpdateTemplate implements template.TemplateService. Each update bumps the version.
func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, req template.UpdateTemplateRequest, updatedBy string) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}

	var updated template.Template
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.templateRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		exists, err := s.templateRepo.ExistsByName(ctx, req.Name, &req.ID)
		if err != nil {
			return err
		}
		if exists {
			return template.ErrTemplateNameExists
		}

		if req.IsDefault && !existing.IsDefault {
			if err := s.templateRepo.UnsetDefault(ctx); err != nil {
				return err
			}
		}

		existing.Name = req.Name
		existing.Description = req.Description
		existing.Content = req.Content
		existing.Category = req.Category
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}
		existing.IsDefault = req.IsDefault
		existing.Version++
		existing.UpdatedBy = &updatedBy

		updated, err = s.templateRepo.Update(ctx, existing)
		return err
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	slog.Info("offer letter template updated", "template_id", updated.ID, "version", updated.Version)
	return template.NewTemplateResponse(updated), nil
}

// DeleteTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id string, deletedBy string) error {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsDefault {
		return template.ErrCannotDeleteDefault
	}

	if err := s.templateRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return err
	}
	slog.Info("offer letter template deleted", "template_id", id)
	return nil
}

// SetDefaultTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) SetDefaultTemplate(ctx context.Context, id string, updatedBy string) (template.TemplateResponse, error) {
	var updated template.Template
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		t, err := s.templateRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.templateRepo.UnsetDefault(ctx); err != nil {
			return err
		}

		t.IsDefault = true
		t.UpdatedBy = &updatedBy
		updated, err = s.templateRepo.Update(ctx, t)
		return err
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	slog.Info("default offer letter template set", "template_id", id)
	return template.NewTemplateResponse(updated), nil
}

// CloneTemplate implements template.TemplateService.
func (s *TemplateServiceImpl) CloneTemplate(ctx context.Context, id string, clonedBy string) (template.TemplateResponse, error) {
	source, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	name := template.CloneName(source.Name)
	exists, err := s.templateRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	if exists {
		return template.TemplateResponse{}, template.ErrTemplateNameExists
	}

	clone, err := s.templateRepo.Create(ctx, template.Template{
		Name:        name,
		Description: source.Description,
		Content:     source.Content,
		Category:    source.Category,
		IsActive:    true,
		IsDefault:   false,
		Version:     1,
		CreatedBy:   clonedBy,
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}

	slog.Info("offer letter template cloned", "source_id", id, "template_id", clone.ID)
	return template.NewTemplateResponse(clone), nil
}

// PreviewTemplate implements template.TemplateService.
// Missing values fall back to the catalogue samples.
func (s *TemplateServiceImpl) PreviewTemplate(ctx context.Context, req template.PreviewTemplateRequest) (template.PreviewTemplateResponse, error) {
	t, err := s.templateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return template.PreviewTemplateResponse{}, err
	}

	values := make(map[string]string)
	for _, p := range s.ListPlaceholders(ctx) {
		values[p.Key] = p.SampleValue
	}
	for k, v := range req.Values {
		values[k] = v
	}

	result := template.Render(t.Content, values)
	resp := template.PreviewTemplateResponse{
		Content:    result.Content,
		Unresolved: result.Unresolved,
	}
	if resp.Unresolved == nil {
		resp.Unresolved = []string{}
	}
	return resp, nil
}

// ListPlaceholders implements template.TemplateService.
func (s *TemplateServiceImpl) ListPlaceholders(ctx context.Context) []template.Placeholder {
	now := s.clock.Now()
	catalog := template.Catalog()
	for i := range catalog {
		switch catalog[i].Key {
		case template.KeyTodayDate:
			catalog[i].SampleValue = now.Format(template.DateFormat)
		case template.KeyTodayTime:
			catalog[i].SampleValue = now.Format(template.TimeFormat)
		case template.KeyCurrentYear:
			catalog[i].SampleValue = strconv.Itoa(now.Year())
		}
	}
	return catalog
}
