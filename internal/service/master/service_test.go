package master

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
	"github.com/workaxis/hrms-backend-go/internal/repository/memory"
)

func setupMasterService() (*memory.Store, MasterService) {
	store := memory.NewStore()
	return store, NewMasterService(store.Departments(), store.Designations(), store.Employees())
}

func strPtr(s string) *string { return &s }

func TestDepartment_CreateNormalizesCode(t *testing.T) {
	_, svc := setupMasterService()

	resp, err := svc.CreateDepartment(context.Background(), department.CreateDepartmentRequest{
		Name: "  Engineering ",
		Code: strPtr(" eng "),
	}, "hr")
	require.NoError(t, err)

	assert.Equal(t, "Engineering", resp.Name)
	require.NotNil(t, resp.Code)
	assert.Equal(t, "ENG", *resp.Code)
	assert.True(t, resp.IsActive)
}

func TestDepartment_DuplicateCode(t *testing.T) {
	_, svc := setupMasterService()
	ctx := context.Background()

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering", Code: strPtr("ENG")}, "hr")
	require.NoError(t, err)
	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering II", Code: strPtr("eng")}, "hr")
	assert.ErrorIs(t, err, department.ErrDepartmentCodeExists)
}

func TestDepartment_Validation(t *testing.T) {
	_, svc := setupMasterService()

	_, err := svc.CreateDepartment(context.Background(), department.CreateDepartmentRequest{}, "hr")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
}

func TestDepartment_UpdateAndList(t *testing.T) {
	_, svc := setupMasterService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Finance"}, "hr")
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{
		ID:                      created.ID,
		CreateDepartmentRequest: department.CreateDepartmentRequest{Name: "Finance & Accounts", IsActive: &inactive},
	}, "hr")
	require.NoError(t, err)
	assert.Equal(t, "Finance & Accounts", updated.Name)
	assert.False(t, updated.IsActive)

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	_, err = svc.GetDepartment(ctx, "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartment_DeleteInUse(t *testing.T) {
	store, svc := setupMasterService()
	ctx := context.Background()

	dept, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Sales"}, "hr")
	require.NoError(t, err)
	desig, err := svc.CreateDesignation(ctx, designation.CreateDesignationRequest{Title: "Rep", Level: 1}, "hr")
	require.NoError(t, err)

	_, err = store.Employees().Create(ctx, employee.Employee{
		EmployeeCode:  "EMP0001",
		FirstName:     "Ravi",
		Email:         "ravi@example.com",
		DepartmentID:  dept.ID,
		DesignationID: desig.ID,
		JoiningDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:        employee.StatusActive,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, dept.ID), department.ErrDepartmentInUse)
	assert.ErrorIs(t, svc.DeleteDesignation(ctx, desig.ID), designation.ErrDesignationInUse)
}

func TestDepartment_Delete(t *testing.T) {
	_, svc := setupMasterService()
	ctx := context.Background()

	dept, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Legal"}, "hr")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, dept.ID))
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, dept.ID), department.ErrDepartmentNotFound)
}

func TestDesignation_CRUD(t *testing.T) {
	_, svc := setupMasterService()
	ctx := context.Background()

	created, err := svc.CreateDesignation(ctx, designation.CreateDesignationRequest{
		Title: "Senior Engineer",
		Code:  strPtr("se2"),
		Level: 3,
	}, "hr")
	require.NoError(t, err)
	require.NotNil(t, created.Code)
	assert.Equal(t, "SE2", *created.Code)

	updated, err := svc.UpdateDesignation(ctx, designation.UpdateDesignationRequest{
		ID:                       created.ID,
		CreateDesignationRequest: designation.CreateDesignationRequest{Title: "Staff Engineer", Level: 4},
	}, "hr")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, 4, updated.Level)
	assert.Nil(t, updated.Code)

	_, err = svc.CreateDesignation(ctx, designation.CreateDesignationRequest{Title: "Bad", Level: -1}, "hr")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "level")

	require.NoError(t, svc.DeleteDesignation(ctx, created.ID))
	_, err = svc.GetDesignation(ctx, created.ID)
	assert.ErrorIs(t, err, designation.ErrDesignationNotFound)
}
