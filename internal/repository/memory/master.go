package memory

import (
	"context"
	"sort"

	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
)

type departmentRepository struct{ s *Store }

func (s *Store) Departments() department.DepartmentRepository { return departmentRepository{s} }

func (r departmentRepository) codeTaken(code *string, excludeID string) bool {
	if code == nil {
		return false
	}
	for id, d := range r.s.data.departments {
		if id != excludeID && d.Code != nil && *d.Code == *code {
			return true
		}
	}
	return false
}

func (r departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(d.Code, "") {
		return department.Department{}, department.ErrDepartmentCodeExists
	}
	d.ID = newID()
	d.CreatedAt, d.UpdatedAt = now(), now()
	r.s.data.departments[d.ID] = d
	return d, nil
}

func (r departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.data.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (r departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []department.Department{}
	for _, d := range r.s.data.departments {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r departmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.departments[d.ID]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if r.codeTaken(d.Code, d.ID) {
		return department.Department{}, department.ErrDepartmentCodeExists
	}
	d.CreatedAt, d.CreatedBy = existing.CreatedAt, existing.CreatedBy
	d.UpdatedAt = now()
	r.s.data.departments[d.ID] = d
	return d, nil
}

func (r departmentRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(r.s.data.departments, id)
	return nil
}

type designationRepository struct{ s *Store }

func (s *Store) Designations() designation.DesignationRepository { return designationRepository{s} }

func (r designationRepository) codeTaken(code *string, excludeID string) bool {
	if code == nil {
		return false
	}
	for id, d := range r.s.data.designations {
		if id != excludeID && d.Code != nil && *d.Code == *code {
			return true
		}
	}
	return false
}

func (r designationRepository) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codeTaken(d.Code, "") {
		return designation.Designation{}, designation.ErrDesignationCodeExists
	}
	d.ID = newID()
	d.CreatedAt, d.UpdatedAt = now(), now()
	r.s.data.designations[d.ID] = d
	return d, nil
}

func (r designationRepository) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.data.designations[id]
	if !ok {
		return designation.Designation{}, designation.ErrDesignationNotFound
	}
	return d, nil
}

func (r designationRepository) List(ctx context.Context) ([]designation.Designation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []designation.Designation{}
	for _, d := range r.s.data.designations {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Level != list[j].Level {
			return list[i].Level < list[j].Level
		}
		return list[i].Title < list[j].Title
	})
	return list, nil
}

func (r designationRepository) Update(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.designations[d.ID]
	if !ok {
		return designation.Designation{}, designation.ErrDesignationNotFound
	}
	if r.codeTaken(d.Code, d.ID) {
		return designation.Designation{}, designation.ErrDesignationCodeExists
	}
	d.CreatedAt, d.CreatedBy = existing.CreatedAt, existing.CreatedBy
	d.UpdatedAt = now()
	r.s.data.designations[d.ID] = d
	return d, nil
}

func (r designationRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.designations[id]; !ok {
		return designation.ErrDesignationNotFound
	}
	delete(r.s.data.designations, id)
	return nil
}
