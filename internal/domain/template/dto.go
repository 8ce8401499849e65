package template

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"is_active"`
	IsDefault   bool    `json:"is_default"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 200 {
		errs.Add("name", "name must not exceed 200 characters")
	}
	if len(r.Description) > 500 {
		errs.Add("description", "description must not exceed 500 characters")
	}
	if validator.IsEmpty(r.Content) {
		errs.Add("content", "content is required")
	}
	if r.Category != nil && len(*r.Category) > 100 {
		errs.Add("category", "category must not exceed 100 characters")
	}

	return errs.Err()
}

type UpdateTemplateRequest struct {
	ID string `json:"-"`
	CreateTemplateRequest
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if err := r.CreateTemplateRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	return errs.Err()
}

type PreviewTemplateRequest struct {
	ID     string            `json:"-"`
	Values map[string]string `json:"values"`
}

type PreviewTemplateResponse struct {
	Content    string   `json:"content"`
	Unresolved []string `json:"unresolved_placeholders"`
}

type TemplateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    *string   `json:"category,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTemplateResponse(t Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Content:     t.Content,
		Category:    t.Category,
		IsActive:    t.IsActive,
		IsDefault:   t.IsDefault,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
		UpdatedAt:   t.UpdatedAt,
	}
}
