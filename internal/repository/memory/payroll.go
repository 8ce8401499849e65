package memory

import (
	"context"
	"sort"

	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
)

type payrollRepository struct{ s *Store }

func (s *Store) Payrolls() payroll.PayrollRepository { return payrollRepository{s} }

func (r payrollRepository) withJoins(p payroll.Payroll) payroll.Payroll {
	if e, ok := r.s.data.employees[p.EmployeeID]; ok {
		code, name := e.EmployeeCode, e.FullName()
		p.EmployeeCode, p.EmployeeName = &code, &name
		if d, ok := r.s.data.departments[e.DepartmentID]; ok {
			p.DepartmentName = &d.Name
		}
		if d, ok := r.s.data.designations[e.DesignationID]; ok {
			p.DesignationName = &d.Title
		}
	}
	return p
}

func (r payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Payrolls.Create"); err != nil {
		return payroll.Payroll{}, err
	}
	for _, other := range r.s.data.payrolls {
		if other.EmployeeID == p.EmployeeID && other.Month == p.Month && other.Year == p.Year {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
	}
	p.ID = newID()
	p.CreatedAt = now()
	r.s.data.payrolls[p.ID] = p
	return r.withJoins(p), nil
}

func (r payrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.data.payrolls {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (r payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.payrolls[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return r.withJoins(p), nil
}

func (r payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []payroll.Payroll{}
	for _, p := range r.s.data.payrolls {
		if filter.Month != nil && p.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && p.Year != *filter.Year {
			continue
		}
		if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
			continue
		}
		list = append(list, r.withJoins(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		if list[i].Month != list[j].Month {
			return list[i].Month > list[j].Month
		}
		return deref(list[i].EmployeeCode) < deref(list[j].EmployeeCode)
	})
	return list, nil
}

func (r payrollRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.payrolls[id]; !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(r.s.data.payrolls, id)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
