package template

import "context"

type TemplateRepository interface {
	Create(ctx context.Context, t Template) (Template, error)
	Update(ctx context.Context, t Template) (Template, error)
	SoftDelete(ctx context.Context, id string, deletedBy string) error
	GetByID(ctx context.Context, id string) (Template, error)
	GetDefault(ctx context.Context) (Template, error)
	List(ctx context.Context) ([]Template, error)
	ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error)
	// UnsetDefault clears the default flag on every template.
	UnsetDefault(ctx context.Context) error
}
