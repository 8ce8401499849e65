package memory

import (
	"context"
	"sort"

	"github.com/workaxis/hrms-backend-go/internal/domain/template"
)

type templateRepository struct{ s *Store }

func (s *Store) Templates() template.TemplateRepository { return templateRepository{s} }

func (r templateRepository) checkUnique(t template.Template) error {
	for id, other := range r.s.data.templates {
		if id == t.ID || other.DeletedAt != nil {
			continue
		}
		if other.Name == t.Name {
			return template.ErrTemplateNameExists
		}
		if t.IsDefault && other.IsDefault {
			return template.ErrDefaultConflict
		}
	}
	return nil
}

func (r templateRepository) Create(ctx context.Context, t template.Template) (template.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUnique(t); err != nil {
		return template.Template{}, err
	}
	t.ID = newID()
	t.CreatedAt, t.UpdatedAt = now(), now()
	r.s.data.templates[t.ID] = t
	return t, nil
}

func (r templateRepository) Update(ctx context.Context, t template.Template) (template.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.templates[t.ID]
	if !ok || existing.DeletedAt != nil {
		return template.Template{}, template.ErrTemplateNotFound
	}
	if err := r.checkUnique(t); err != nil {
		return template.Template{}, err
	}
	t.CreatedAt, t.CreatedBy = existing.CreatedAt, existing.CreatedBy
	t.UpdatedAt = now()
	r.s.data.templates[t.ID] = t
	return t, nil
}

func (r templateRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.data.templates[id]
	if !ok || t.DeletedAt != nil {
		return template.ErrTemplateNotFound
	}
	deletedAt := now()
	t.DeletedAt = &deletedAt
	t.IsActive = false
	t.UpdatedBy = &deletedBy
	r.s.data.templates[id] = t
	return nil
}

func (r templateRepository) GetByID(ctx context.Context, id string) (template.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.data.templates[id]
	if !ok || t.DeletedAt != nil {
		return template.Template{}, template.ErrTemplateNotFound
	}
	return t, nil
}

func (r templateRepository) GetDefault(ctx context.Context) (template.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.data.templates {
		if t.IsDefault && t.IsActive && t.DeletedAt == nil {
			return t, nil
		}
	}
	return template.Template{}, template.ErrDefaultTemplateNotFound
}

func (r templateRepository) List(ctx context.Context) ([]template.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []template.Template{}
	for _, t := range r.s.data.templates {
		if t.DeletedAt == nil {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsDefault != list[j].IsDefault {
			return list[i].IsDefault
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r templateRepository) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.data.templates {
		if t.DeletedAt != nil || (excludeID != nil && id == *excludeID) {
			continue
		}
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r templateRepository) UnsetDefault(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.data.templates {
		if t.IsDefault && t.DeletedAt == nil {
			t.IsDefault = false
			r.s.data.templates[id] = t
		}
	}
	return nil
}
