package template

import "context"

type TemplateService interface {
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	GetTemplate(ctx context.Context, id string) (TemplateResponse, error)
	GetDefaultTemplate(ctx context.Context) (TemplateResponse, error)
	CreateTemplate(ctx context.Context, req CreateTemplateRequest, createdBy string) (TemplateResponse, error)
	UpdateTemplate(ctx context.Context, req UpdateTemplateRequest, updatedBy string) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string, deletedBy string) error
	SetDefaultTemplate(ctx context.Context, id string, updatedBy string) (TemplateResponse, error)
	CloneTemplate(ctx context.Context, id string, clonedBy string) (TemplateResponse, error)
	PreviewTemplate(ctx context.Context, req PreviewTemplateRequest) (PreviewTemplateResponse, error)
	ListPlaceholders(ctx context.Context) []Placeholder
}
