package memory

import (
	"context"
	"sort"

	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
)

type leaveTypeRepository struct{ s *Store }

func (s *Store) LeaveTypes() leave.LeaveTypeRepository { return leaveTypeRepository{s} }

func (r leaveTypeRepository) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.data.leaveTypes {
		if other.Name == lt.Name {
			return leave.LeaveType{}, leave.ErrLeaveTypeNameExists
		}
	}
	lt.ID = newID()
	lt.CreatedAt, lt.UpdatedAt = now(), now()
	r.s.data.leaveTypes[lt.ID] = lt
	return lt, nil
}

func (r leaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lt, ok := r.s.data.leaveTypes[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r leaveTypeRepository) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []leave.LeaveType{}
	for _, lt := range r.s.data.leaveTypes {
		if activeOnly && !lt.IsActive {
			continue
		}
		list = append(list, lt)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

type leaveBalanceRepository struct{ s *Store }

func (s *Store) LeaveBalances() leave.LeaveBalanceRepository { return leaveBalanceRepository{s} }

func (r leaveBalanceRepository) withJoins(b leave.LeaveBalance) leave.LeaveBalance {
	if lt, ok := r.s.data.leaveTypes[b.LeaveTypeID]; ok {
		name := lt.Name
		b.LeaveTypeName = &name
	}
	return b
}

func (r leaveBalanceRepository) find(employeeID, leaveTypeID string, year int) (leave.LeaveBalance, bool) {
	for _, b := range r.s.data.leaveBalances {
		if b.EmployeeID == employeeID && b.LeaveTypeID == leaveTypeID && b.Year == year {
			return b, true
		}
	}
	return leave.LeaveBalance{}, false
}

func (r leaveBalanceRepository) CreateIfNotExists(ctx context.Context, b leave.LeaveBalance) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.find(b.EmployeeID, b.LeaveTypeID, b.Year); ok {
		return false, nil
	}
	b.ID = newID()
	b.CreatedAt, b.UpdatedAt = now(), now()
	r.s.data.leaveBalances[b.ID] = b
	return true, nil
}

func (r leaveBalanceRepository) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.find(employeeID, leaveTypeID, year)
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return r.withJoins(b), nil
}

func (r leaveBalanceRepository) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return r.Get(ctx, employeeID, leaveTypeID, year)
}

func (r leaveBalanceRepository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []leave.LeaveBalance{}
	for _, b := range r.s.data.leaveBalances {
		if b.EmployeeID == employeeID && b.Year == year {
			list = append(list, r.withJoins(b))
		}
	}
	sort.Slice(list, func(i, j int) bool { return deref(list[i].LeaveTypeName) < deref(list[j].LeaveTypeName) })
	return list, nil
}

func (r leaveBalanceRepository) UpdateUsage(ctx context.Context, b leave.LeaveBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.leaveBalances[b.ID]
	if !ok {
		return leave.ErrLeaveBalanceNotFound
	}
	existing.UsedDays = b.UsedDays
	existing.AvailableDays = b.AvailableDays
	existing.UpdatedBy = b.UpdatedBy
	existing.UpdatedAt = now()
	r.s.data.leaveBalances[b.ID] = existing
	return nil
}

type leaveRequestRepository struct{ s *Store }

func (s *Store) LeaveRequests() leave.LeaveRequestRepository { return leaveRequestRepository{s} }

func (r leaveRequestRepository) withJoins(lr leave.LeaveRequest) leave.LeaveRequest {
	if e, ok := r.s.data.employees[lr.EmployeeID]; ok {
		name := e.FullName()
		lr.EmployeeName = &name
	}
	if lt, ok := r.s.data.leaveTypes[lr.LeaveTypeID]; ok {
		name := lt.Name
		lr.LeaveTypeName = &name
	}
	return lr
}

func (r leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lr.ID = newID()
	lr.CreatedAt, lr.UpdatedAt = now(), now()
	r.s.data.leaveRequests[lr.ID] = lr
	return r.withJoins(lr), nil
}

func (r leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lr, ok := r.s.data.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.withJoins(lr), nil
}

func (r leaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r leaveRequestRepository) Update(ctx context.Context, lr leave.LeaveRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.data.leaveRequests[lr.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	existing.Status = lr.Status
	existing.ApprovedOn = lr.ApprovedOn
	existing.ApprovedBy = lr.ApprovedBy
	existing.ApprovalComments = lr.ApprovalComments
	existing.UpdatedBy = lr.UpdatedBy
	existing.UpdatedAt = now()
	r.s.data.leaveRequests[lr.ID] = existing
	return nil
}

func (r leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []leave.LeaveRequest{}
	for _, lr := range r.s.data.leaveRequests {
		if filter.EmployeeID != nil && lr.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && lr.Status != *filter.Status {
			continue
		}
		list = append(list, r.withJoins(lr))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
	return list, nil
}
