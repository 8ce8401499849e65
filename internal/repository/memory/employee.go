package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
)

type employeeRepository struct{ s *Store }

func (s *Store) Employees() employee.EmployeeRepository { return employeeRepository{s} }

func (r employeeRepository) withJoins(e employee.Employee) employee.Employee {
	if d, ok := r.s.data.departments[e.DepartmentID]; ok {
		name := d.Name
		e.DepartmentName = &name
	}
	if d, ok := r.s.data.designations[e.DesignationID]; ok {
		title := d.Title
		e.DesignationName = &title
	}
	return e
}

func (r employeeRepository) checkUnique(e employee.Employee, codeErr error) error {
	for id, other := range r.s.data.employees {
		if id == e.ID || other.DeletedAt != nil {
			continue
		}
		if other.EmployeeCode == e.EmployeeCode {
			return codeErr
		}
		if strings.EqualFold(other.Email, e.Email) {
			return employee.ErrEmailExists
		}
	}
	return nil
}

func (r employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Employees.Create"); err != nil {
		return employee.Employee{}, err
	}
	if err := r.checkUnique(e, employee.ErrEmployeeCodeExists); err != nil {
		return employee.Employee{}, err
	}
	e.ID = newID()
	e.CreatedAt, e.UpdatedAt = now(), now()
	r.s.data.employees[e.ID] = e
	return r.withJoins(e), nil
}

func (r employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Employees.Update"); err != nil {
		return employee.Employee{}, err
	}
	existing, ok := r.s.data.employees[e.ID]
	if !ok || existing.DeletedAt != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err := r.checkUnique(e, employee.ErrEmployeeCodeConflict); err != nil {
		return employee.Employee{}, err
	}
	e.CreatedAt, e.CreatedBy = existing.CreatedAt, existing.CreatedBy
	e.UpdatedAt = now()
	r.s.data.employees[e.ID] = e
	return r.withJoins(e), nil
}

func (r employeeRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.data.employees[id]
	if !ok || e.DeletedAt != nil {
		return employee.ErrEmployeeNotFound
	}
	t := now()
	e.DeletedAt = &t
	e.UpdatedBy = &deletedBy
	r.s.data.employees[id] = e
	return nil
}

func (r employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.data.employees[id]
	if !ok || e.DeletedAt != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.withJoins(e), nil
}

func (r employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	list := []employee.Employee{}
	for _, e := range r.s.data.employees {
		if e.DeletedAt != nil {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.DepartmentID != nil && e.DepartmentID != *filter.DepartmentID {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(strings.Join([]string{e.EmployeeCode, e.FullName(), e.Email}, " "))
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		list = append(list, r.withJoins(e))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeCode < list[j].EmployeeCode })
	return list, nil
}

func (r employeeRepository) exists(match func(employee.Employee) bool) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.data.employees {
		if e.DeletedAt == nil && match(e) {
			return true
		}
	}
	return false
}

func (r employeeRepository) ExistsByDepartmentID(ctx context.Context, departmentID string) (bool, error) {
	return r.exists(func(e employee.Employee) bool { return e.DepartmentID == departmentID }), nil
}

func (r employeeRepository) ExistsByDesignationID(ctx context.Context, designationID string) (bool, error) {
	return r.exists(func(e employee.Employee) bool { return e.DesignationID == designationID }), nil
}

func (r employeeRepository) NextPermanentCode(ctx context.Context) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	codes := make([]string, 0, len(r.s.data.employees))
	for _, e := range r.s.data.employees {
		codes = append(codes, e.EmployeeCode)
	}
	next, _ := employee.ParsePermanentCode(employee.NextPermanentCode(codes))
	if r.s.data.codeSequence+1 > next {
		next = r.s.data.codeSequence + 1
	}
	r.s.data.codeSequence = next
	return employee.FormatPermanentCode(next), nil
}
