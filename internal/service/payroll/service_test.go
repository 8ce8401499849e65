package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
	"github.com/workaxis/hrms-backend-go/internal/repository/memory"
)

type stubRenderer struct {
	got payroll.Payroll
}

func (r *stubRenderer) RenderPayslip(p payroll.Payroll) ([]byte, error) {
	r.got = p
	return []byte("%PDF-1.3 stub"), nil
}

type payrollFixture struct {
	store     *memory.Store
	service   payroll.PayrollService
	recorder  *events.Recorder
	renderer  *stubRenderer
	deptID    string
	desigID   string
	processed time.Time
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	dept, err := store.Departments().Create(ctx, department.Department{Name: "Engineering", IsActive: true})
	require.NoError(t, err)
	desig, err := store.Designations().Create(ctx, designation.Designation{Title: "Engineer", Level: 2, IsActive: true})
	require.NoError(t, err)

	f := &payrollFixture{
		store:     store,
		recorder:  &events.Recorder{},
		renderer:  &stubRenderer{},
		deptID:    dept.ID,
		desigID:   desig.ID,
		processed: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}
	f.service = NewPayrollService(
		store,
		store.Payrolls(),
		store.Employees(),
		store.Salaries(),
		f.renderer,
		f.recorder,
		clock.Fixed(f.processed),
	)
	return f
}

func (f *payrollFixture) addEmployee(t *testing.T, code string, status employee.Status, joined time.Time) employee.Employee {
	t.Helper()
	e, err := f.store.Employees().Create(context.Background(), employee.Employee{
		EmployeeCode:  code,
		FirstName:     "Emp",
		LastName:      code,
		Email:         code + "@example.com",
		DepartmentID:  f.deptID,
		DesignationID: f.desigID,
		JoiningDate:   joined,
		Status:        status,
		CreatedBy:     "admin",
	})
	require.NoError(t, err)
	return e
}

func (f *payrollFixture) addSalary(t *testing.T, employeeID string) salary.Salary {
	t.Helper()
	sal := salary.Salary{
		EmployeeID: employeeID,
		Components: salary.Components{
			BasicSalary:         decimal.RequireFromString("30000"),
			HRA:                 decimal.RequireFromString("12000"),
			ConveyanceAllowance: decimal.RequireFromString("1600"),
			MedicalAllowance:    decimal.RequireFromString("1250"),
			SpecialAllowance:    decimal.RequireFromString("5150"),
			PF:                  decimal.RequireFromString("3600"),
			ProfessionalTax:     decimal.RequireFromString("200"),
			TDS:                 decimal.RequireFromString("1001"),
		},
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
		CreatedBy:     "admin",
	}
	sal.Recalculate()
	created, err := f.store.Salaries().Create(context.Background(), sal)
	require.NoError(t, err)
	return created
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ===== GENERATE PAYROLL TESTS =====

func TestPayrollService_Generate_ProRatesMidMonthJoiner(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
	sal := f.addSalary(t, emp.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 6, Year: 2024}, "hr")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Requested)
	assert.Equal(t, 1, resp.Generated)
	assert.Empty(t, resp.Skipped)
	assert.Equal(t, "Successfully generated 1 payroll record(s)", resp.Message)

	list, err := f.store.Payrolls().List(ctx, payroll.PayrollFilter{EmployeeID: &emp.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	p := list[0]

	assert.Equal(t, sal.ID, p.SalaryID)
	assert.Equal(t, 30, p.WorkingDays)
	assert.Equal(t, 15, p.PaidDays)
	assert.Equal(t, 15, p.PresentDays)
	assert.Equal(t, 0, p.LeaveDays)
	assert.Equal(t, 15, p.AbsentDays)
	assert.True(t, p.IsProRated)
	assert.True(t, p.BasicSalary.Equal(d("15000")))
	// 1001 * 0.5 = 500.5 stays exact; 1250 * 0.5 = 625
	assert.True(t, p.TDS.Equal(d("500.50")))
	assert.True(t, p.MedicalAllowance.Equal(d("625")))
	assert.True(t, p.GrossSalary.Equal(d("25000")))
	assert.True(t, p.TotalDeductions.Equal(d("2400.50")))
	assert.True(t, p.NetSalary.Equal(d("22599.50")))
	// unscaled gross 50000 / 30
	assert.True(t, p.PerDaySalary.Equal(d("1666.67")))

	assert.True(t, p.IsProcessed)
	require.NotNil(t, p.ProcessedOn)
	assert.Equal(t, f.processed, *p.ProcessedOn)
	require.NotNil(t, p.ProcessedBy)
	assert.Equal(t, "hr", *p.ProcessedBy)
}

func TestPayrollService_Generate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	req := payroll.GeneratePayrollRequest{Month: 3, Year: 2024}
	first, err := f.service.GeneratePayroll(ctx, req, "hr")
	require.NoError(t, err)
	require.Equal(t, 1, first.Generated)

	second, err := f.service.GeneratePayroll(ctx, req, "hr")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Generated)
	require.Len(t, second.Skipped, 1)
	assert.Equal(t, payroll.SkipReasonAlreadyGenerated, second.Skipped[0].Reason)
	assert.Equal(t, "EMP0001", second.Skipped[0].EmployeeCode)

	list, err := f.service.ListPayrolls(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "50000.00", list[0].GrossSalary)
	assert.Empty(t, list[0].CTC)
}

func TestPayrollService_Generate_SkipsWithoutActiveSalaryAndInactiveEmployees(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	joined := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	paid := f.addEmployee(t, "EMP0001", employee.StatusActive, joined)
	f.addSalary(t, paid.ID)
	f.addEmployee(t, "EMP0002", employee.StatusActive, joined)
	draft := f.addEmployee(t, "DRAFT_abc", employee.StatusDraft, joined)
	f.addSalary(t, draft.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "EMP0002", resp.Skipped[0].EmployeeCode)
	assert.Equal(t, payroll.SkipReasonNoActiveSalary, resp.Skipped[0].Reason)
	assert.Equal(t, "Successfully generated 1 payroll record(s). Skipped 1 employee(s): 1 no active salary", resp.Message)
}

func TestPayrollService_Generate_SingleEmployee(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	joined := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	a := f.addEmployee(t, "EMP0001", employee.StatusActive, joined)
	f.addSalary(t, a.ID)
	b := f.addEmployee(t, "EMP0002", employee.StatusActive, joined)
	f.addSalary(t, b.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024, EmployeeID: &b.ID}, "hr")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Requested)
	require.Len(t, resp.Payrolls, 1)
	assert.Equal(t, b.ID, resp.Payrolls[0].EmployeeID)
	assert.Equal(t, 29, resp.Payrolls[0].TotalCalendarDays)
}

func TestPayrollService_Generate_UnknownEmployee(t *testing.T) {
	f := newPayrollFixture(t)
	missing := "00000000-0000-0000-0000-000000000000"

	_, err := f.service.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 2, Year: 2024, EmployeeID: &missing}, "hr")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.Empty(t, f.recorder.Events())
}

func TestPayrollService_Generate_InvalidPeriod(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.GeneratePayroll(context.Background(), payroll.GeneratePayrollRequest{Month: 13, Year: 1999}, "hr")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
	assert.Contains(t, verrs.ToMap(), "year")
}

func TestPayrollService_Generate_RollsBackOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	f.store.FailOn["Payrolls.Create"] = errors.New("disk full")

	_, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.Error(t, err)

	list, err := f.store.Payrolls().List(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.recorder.Events())
}

func TestPayrollService_Generate_ConcurrentRunTookThePeriod(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	f.store.FailOn["Payrolls.Create"] = payroll.ErrPayrollAlreadyExists

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Requested)
	assert.Equal(t, 0, resp.Generated)
	assert.Empty(t, resp.Payrolls)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, emp.ID, resp.Skipped[0].EmployeeID)
	assert.Equal(t, payroll.SkipReasonAlreadyGenerated, resp.Skipped[0].Reason)
	assert.Empty(t, f.recorder.Events())
}

func TestPayrollService_Generate_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.NoError(t, err)

	published := f.recorder.Events()
	require.Len(t, published, 1)
	event, ok := published[0].(events.PayrollGeneratedEvent)
	require.True(t, ok)
	assert.Equal(t, []string{resp.Payrolls[0].ID}, event.PayrollIDs)
	assert.Equal(t, "2024-02", event.Key())
}

// ===== PAYSLIP TESTS =====

func TestPayrollService_Payslip(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0007", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.NoError(t, err)

	doc, err := f.service.Payslip(ctx, resp.Payrolls[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "payslip_EMP0007_2024_02.pdf", doc.FileName)
	assert.NotEmpty(t, doc.Content)
	assert.Equal(t, "February 2024", f.renderer.got.PeriodLabel())
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t)
	emp := f.addEmployee(t, "EMP0001", employee.StatusActive, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addSalary(t, emp.ID)

	resp, err := f.service.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{Month: 2, Year: 2024}, "hr")
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePayroll(ctx, resp.Payrolls[0].ID))
	_, err = f.service.GetPayroll(ctx, resp.Payrolls[0].ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
