package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/repository/memory"
)

var leaveNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

type leaveFixture struct {
	store   *memory.Store
	service leave.LeaveService
	casual  leave.LeaveType
	sick    leave.LeaveType
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	casual, err := store.LeaveTypes().Create(ctx, leave.LeaveType{Name: "Casual Leave", DefaultDaysPerYear: 12, IsPaid: true, IsActive: true})
	require.NoError(t, err)
	sick, err := store.LeaveTypes().Create(ctx, leave.LeaveType{Name: "Sick Leave", DefaultDaysPerYear: 10, IsPaid: true, IsActive: true})
	require.NoError(t, err)
	_, err = store.LeaveTypes().Create(ctx, leave.LeaveType{Name: "Retired Leave", DefaultDaysPerYear: 5, IsActive: false})
	require.NoError(t, err)

	return &leaveFixture{
		store: store,
		service: NewLeaveService(
			store,
			store.LeaveTypes(),
			store.LeaveBalances(),
			store.LeaveRequests(),
			store.Employees(),
			clock.Fixed(leaveNow),
		),
		casual: casual,
		sick:   sick,
	}
}

func (f *leaveFixture) addEmployee(t *testing.T, code string, status employee.Status) employee.Employee {
	t.Helper()
	ctx := context.Background()
	dept, err := f.store.Departments().Create(ctx, department.Department{Name: "Ops " + code, IsActive: true})
	require.NoError(t, err)
	desig, err := f.store.Designations().Create(ctx, designation.Designation{Title: "Associate " + code, IsActive: true})
	require.NoError(t, err)

	e, err := f.store.Employees().Create(ctx, employee.Employee{
		EmployeeCode:  code,
		FirstName:     "Ravi",
		LastName:      code,
		Email:         code + "@example.com",
		DepartmentID:  dept.ID,
		DesignationID: desig.ID,
		JoiningDate:   time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
		Status:        status,
		CreatedBy:     "admin",
	})
	require.NoError(t, err)
	return e
}

func (f *leaveFixture) balance(t *testing.T, employeeID, leaveTypeID string) leave.LeaveBalance {
	t.Helper()
	b, err := f.store.LeaveBalances().Get(context.Background(), employeeID, leaveTypeID, leaveNow.Year())
	require.NoError(t, err)
	return b
}

// ===== BALANCE TESTS =====

func TestLeaveService_InitializeBalances_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	first, err := f.service.InitializeBalances(ctx, emp.ID, 2024, "hr")
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	require.Len(t, first.Balances, 2)
	assert.Equal(t, "12.0", first.Balances[0].TotalDays)
	assert.Equal(t, "12.0", first.Balances[0].AvailableDays)
	assert.Equal(t, "0.0", first.Balances[0].UsedDays)

	second, err := f.service.InitializeBalances(ctx, emp.ID, 2024, "hr")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, second.Balances, 2)
}

func TestLeaveService_InitializeBalances_UnknownEmployee(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.service.InitializeBalances(context.Background(), "00000000-0000-0000-0000-000000000000", 2024, "hr")
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}

func TestLeaveService_InitializeBalancesForActiveEmployees(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	active := f.addEmployee(t, "EMP0001", employee.StatusActive)
	draft := f.addEmployee(t, "DRAFT_x", employee.StatusDraft)

	created, err := f.service.InitializeBalancesForActiveEmployees(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	balances, err := f.service.GetBalances(ctx, active.ID, 2024)
	require.NoError(t, err)
	assert.Len(t, balances, 2)

	balances, err = f.service.GetBalances(ctx, draft.ID, 2024)
	require.NoError(t, err)
	assert.Empty(t, balances)

	created, err = f.service.InitializeBalancesForActiveEmployees(ctx, 2024)
	require.NoError(t, err)
	assert.Zero(t, created)
}

// ===== REQUEST TESTS =====

func TestLeaveService_CreateLeaveRequest_InitializesBalancesLazily(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	resp, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.casual.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-05",
	}, "EMP0001")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, "3.0", resp.NumberOfDays)

	b := f.balance(t, emp.ID, f.casual.ID)
	assert.Equal(t, "System", b.CreatedBy)
	assert.True(t, b.AvailableDays.Equal(b.TotalDays))
}

func TestLeaveService_CreateLeaveRequest_EndBeforeStart(t *testing.T) {
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	_, err := f.service.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.casual.ID,
		StartDate:   "2024-06-05",
		EndDate:     "2024-06-03",
	}, "EMP0001")
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrEndBeforeStart)
	assert.Equal(t, "End date cannot be before start date", err.Error())
}

func TestLeaveService_CreateLeaveRequest_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	_, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.sick.ID,
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-11",
	}, "EMP0001")
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Equal(t, apperror.CodeInsufficientBalance, apperror.CodeOf(err))
	assert.Equal(t, "Insufficient leave balance. Available: 10 days, Requested: 11 days", err.Error())

	requests, err := f.service.ListLeaveRequests(ctx, leave.LeaveRequestFilter{EmployeeID: &emp.ID})
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestLeaveService_ApproveLeaveRequest_DecrementsBalanceOnce(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	created, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.casual.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-05",
	}, "EMP0001")
	require.NoError(t, err)

	comments := "enjoy"
	approved, err := f.service.ApproveLeaveRequest(ctx, leave.ApproveLeaveRequest{ID: created.ID, IsApproved: true, Comments: &comments}, "manager")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedOn)
	assert.Equal(t, leaveNow, *approved.ApprovedOn)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager", *approved.ApprovedBy)

	b := f.balance(t, emp.ID, f.casual.ID)
	assert.Equal(t, "3", b.UsedDays.String())
	assert.Equal(t, "9", b.AvailableDays.String())

	_, err = f.service.ApproveLeaveRequest(ctx, leave.ApproveLeaveRequest{ID: created.ID, IsApproved: true}, "manager")
	assert.ErrorIs(t, err, leave.ErrNotPendingForApproval)
	assert.Equal(t, apperror.CodeInvalidState, apperror.CodeOf(err))

	b = f.balance(t, emp.ID, f.casual.ID)
	assert.Equal(t, "9", b.AvailableDays.String())
}

func TestLeaveService_RejectLeaveRequest_KeepsBalance(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	created, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.casual.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-03",
	}, "EMP0001")
	require.NoError(t, err)

	rejected, err := f.service.ApproveLeaveRequest(ctx, leave.ApproveLeaveRequest{ID: created.ID, IsApproved: false}, "manager")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)

	b := f.balance(t, emp.ID, f.casual.ID)
	assert.Equal(t, "12", b.AvailableDays.String())
}

func TestLeaveService_CancelLeaveRequest(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	created, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: f.casual.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-04",
	}, "EMP0001")
	require.NoError(t, err)

	cancelled, err := f.service.CancelLeaveRequest(ctx, created.ID, "EMP0001")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, cancelled.Status)

	_, err = f.service.CancelLeaveRequest(ctx, created.ID, "EMP0001")
	assert.ErrorIs(t, err, leave.ErrNotPendingForCancel)

	_, err = f.service.ApproveLeaveRequest(ctx, leave.ApproveLeaveRequest{ID: created.ID, IsApproved: true}, "manager")
	assert.ErrorIs(t, err, leave.ErrNotPendingForApproval)
}

func TestLeaveService_ApproveLeaveRequest_NotFound(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.service.ApproveLeaveRequest(context.Background(), leave.ApproveLeaveRequest{ID: "missing", IsApproved: true}, "manager")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_ListPendingLeaveRequests_OrderedByStartDate(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive)

	for _, start := range []string{"2024-07-10", "2024-06-03", "2024-06-20"} {
		_, err := f.service.CreateLeaveRequest(ctx, leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: f.casual.ID,
			StartDate:   start,
			EndDate:     start,
		}, "EMP0001")
		require.NoError(t, err)
	}

	pending, err := f.service.ListPendingLeaveRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "2024-06-03", pending[0].StartDate)
	assert.Equal(t, "2024-06-20", pending[1].StartDate)
	assert.Equal(t, "2024-07-10", pending[2].StartDate)
}

// ===== LEAVE TYPE TESTS =====

func TestLeaveService_CreateLeaveType(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)

	unpaid := false
	created, err := f.service.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Loss of Pay", IsPaid: &unpaid}, "hr")
	require.NoError(t, err)
	assert.False(t, created.IsPaid)
	assert.True(t, created.IsActive)

	_, err = f.service.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Loss of Pay"}, "hr")
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNameExists)

	active, err := f.service.ListLeaveTypes(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}
