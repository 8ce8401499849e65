package memory

import (
	"context"
	"sort"
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
)

type salaryRepository struct{ s *Store }

func (s *Store) Salaries() salary.SalaryRepository { return salaryRepository{s} }

func (r salaryRepository) withJoins(sal salary.Salary) salary.Salary {
	if e, ok := r.s.data.employees[sal.EmployeeID]; ok {
		code, name := e.EmployeeCode, e.FullName()
		sal.EmployeeCode, sal.EmployeeName = &code, &name
	}
	return sal
}

func (r salaryRepository) Create(ctx context.Context, sal salary.Salary) (salary.Salary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Salaries.Create"); err != nil {
		return salary.Salary{}, err
	}
	if sal.IsActive {
		for _, other := range r.s.data.salaries {
			if other.EmployeeID == sal.EmployeeID && other.IsActive {
				return salary.Salary{}, salary.ErrActiveSalaryConflict
			}
		}
	}
	sal.ID = newID()
	sal.CreatedAt, sal.UpdatedAt = now(), now()
	r.s.data.salaries[sal.ID] = sal
	return r.withJoins(sal), nil
}

func (r salaryRepository) Update(ctx context.Context, sal salary.Salary) (salary.Salary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.salaries[sal.ID]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	sal.CreatedAt, sal.CreatedBy = existing.CreatedAt, existing.CreatedBy
	sal.UpdatedAt = now()
	r.s.data.salaries[sal.ID] = sal
	return r.withJoins(sal), nil
}

func (r salaryRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.salaries[id]; !ok {
		return salary.ErrSalaryNotFound
	}
	delete(r.s.data.salaries, id)
	return nil
}

func (r salaryRepository) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sal, ok := r.s.data.salaries[id]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return r.withJoins(sal), nil
}

func (r salaryRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sal := range r.s.data.salaries {
		if sal.EmployeeID == employeeID && sal.IsActive {
			return r.withJoins(sal), nil
		}
	}
	return salary.Salary{}, salary.ErrActiveSalaryNotFound
}

func (r salaryRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []salary.Salary{}
	for _, sal := range r.s.data.salaries {
		if sal.EmployeeID == employeeID {
			list = append(list, r.withJoins(sal))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EffectiveFrom.After(list[j].EffectiveFrom) })
	return list, nil
}

func (r salaryRepository) DeactivateActive(ctx context.Context, employeeID string, effectiveTo time.Time, updatedBy string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, sal := range r.s.data.salaries {
		if sal.EmployeeID != employeeID || !sal.IsActive {
			continue
		}
		to := effectiveTo
		sal.IsActive = false
		sal.EffectiveTo = &to
		sal.UpdatedBy = &updatedBy
		sal.UpdatedAt = now()
		r.s.data.salaries[id] = sal
		n++
	}
	return n, nil
}
