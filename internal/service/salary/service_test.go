package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/repository/memory"
)

func setupSalaryService(t *testing.T) (*memory.Store, salary.SalaryService, employee.Employee) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	dept, err := store.Departments().Create(ctx, department.Department{Name: "Finance", IsActive: true})
	require.NoError(t, err)
	desig, err := store.Designations().Create(ctx, designation.Designation{Title: "Analyst", Level: 1, IsActive: true})
	require.NoError(t, err)
	emp, err := store.Employees().Create(ctx, employee.Employee{
		EmployeeCode:  "EMP0001",
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		DepartmentID:  dept.ID,
		DesignationID: desig.ID,
		JoiningDate:   time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:        employee.StatusActive,
		CreatedBy:     "admin",
	})
	require.NoError(t, err)

	return store, NewSalaryService(store, store.Salaries(), store.Employees()), emp
}

func components(basic string) salary.Components {
	return salary.Components{
		BasicSalary: decimal.RequireFromString(basic),
		HRA:         decimal.RequireFromString("10000"),
		PF:          decimal.RequireFromString("1800"),
	}
}

func TestSalaryService_Create_ComputesTotals(t *testing.T) {
	ctx := context.Background()
	_, svc, emp := setupSalaryService(t)

	resp, err := svc.Create(ctx, salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "2024-01-01",
		Components:    components("20000"),
	}, "hr")
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	assert.Equal(t, "30000.00", resp.GrossSalary)
	assert.Equal(t, "1800.00", resp.TotalDeductions)
	assert.Equal(t, "28200.00", resp.NetSalary)
	assert.Equal(t, "31800.00", resp.CTC)
	assert.Nil(t, resp.EffectiveTo)
}

func TestSalaryService_Create_SupersedesActiveSalary(t *testing.T) {
	ctx := context.Background()
	store, svc, emp := setupSalaryService(t)

	first, err := svc.Create(ctx, salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "2024-01-01",
		Components:    components("20000"),
	}, "hr")
	require.NoError(t, err)

	second, err := svc.Create(ctx, salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "2024-07-01",
		Components:    components("25000"),
	}, "hr")
	require.NoError(t, err)

	old, err := store.Salaries().GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsActive)
	require.NotNil(t, old.EffectiveTo)
	assert.Equal(t, "2024-06-30", old.EffectiveTo.Format("2006-01-02"))

	active, err := svc.GetActive(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	history, err := svc.History(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestSalaryService_Create_Validation(t *testing.T) {
	_, svc, emp := setupSalaryService(t)

	c := components("20000")
	c.TDS = decimal.RequireFromString("-1")
	_, err := svc.Create(context.Background(), salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "01/01/2024",
		Components:    c,
	}, "hr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effective_from")
	assert.Contains(t, err.Error(), "tds must not be negative")
}

func TestSalaryService_Create_UnknownEmployee(t *testing.T) {
	_, svc, _ := setupSalaryService(t)

	_, err := svc.Create(context.Background(), salary.CreateSalaryRequest{
		EmployeeID:    "00000000-0000-0000-0000-000000000000",
		EffectiveFrom: "2024-01-01",
		Components:    components("20000"),
	}, "hr")
	assert.ErrorIs(t, err, salary.ErrEmployeeNotFound)
}

func TestSalaryService_Update_RecalculatesTotals(t *testing.T) {
	ctx := context.Background()
	_, svc, emp := setupSalaryService(t)

	created, err := svc.Create(ctx, salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "2024-01-01",
		Components:    components("20000"),
	}, "hr")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, salary.UpdateSalaryRequest{
		ID:         created.ID,
		Components: components("40000"),
	}, "hr")
	require.NoError(t, err)
	assert.Equal(t, "50000.00", updated.GrossSalary)
	assert.Equal(t, "48200.00", updated.NetSalary)
	assert.Equal(t, "2024-01-01", updated.EffectiveFrom)
}

func TestSalaryService_Delete(t *testing.T) {
	ctx := context.Background()
	_, svc, emp := setupSalaryService(t)

	created, err := svc.Create(ctx, salary.CreateSalaryRequest{
		EmployeeID:    emp.ID,
		EffectiveFrom: "2024-01-01",
		Components:    components("20000"),
	}, "hr")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
	_, err = svc.GetActive(ctx, emp.ID)
	assert.ErrorIs(t, err, salary.ErrActiveSalaryNotFound)
}
