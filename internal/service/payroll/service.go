package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
)

type PayrollServiceImpl struct {
	txManager    database.TxManager
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	salaryRepo   salary.SalaryRepository
	renderer     payroll.PayslipRenderer
	publisher    events.Publisher
	clock        clock.Clock
}

func NewPayrollService(
	txManager database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	renderer payroll.PayslipRenderer,
	publisher events.Publisher,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txManager:    txManager,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
		renderer:     renderer,
		publisher:    publisher,
		clock:        clk,
	}
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest, createdBy string) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	targets, err := s.resolveTargets(ctx, req.EmployeeID)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	resp := payroll.GeneratePayrollResponse{
		Month:     req.Month,
		Year:      req.Year,
		Requested: len(targets),
		Skipped:   []payroll.SkippedEmployee{},
		Payrolls:  []payroll.PayrollResponse{},
	}

	var generated []payroll.Payroll
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		generated = generated[:0]
		resp.Skipped = resp.Skipped[:0]

		for _, emp := range targets {
			created, reason, err := s.generateOne(ctx, emp, req.Month, req.Year, createdBy)
			if err != nil {
				return fmt.Errorf("generate payroll for employee %s: %w", emp.ID, err)
			}
			if reason != "" {
				slog.Warn("payroll skipped",
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"month", req.Month,
					"year", req.Year,
					"reason", reason,
				)
				resp.Skipped = append(resp.Skipped, payroll.SkippedEmployee{
					EmployeeID:   emp.ID,
					EmployeeCode: emp.EmployeeCode,
					Reason:       reason,
				})
				continue
			}
			generated = append(generated, created)
		}
		return nil
	})
	if err != nil {
		slog.Error("payroll generation failed", "month", req.Month, "year", req.Year, "error", err)
		return payroll.GeneratePayrollResponse{}, err
	}

	ids := make([]string, 0, len(generated))
	for _, p := range generated {
		resp.Payrolls = append(resp.Payrolls, payroll.NewPayrollResponse(p))
		ids = append(ids, p.ID)
	}
	resp.Generated = len(generated)
	resp.Message = generationMessage(resp.Generated, resp.Skipped)

	slog.Info("payroll generated",
		"month", req.Month,
		"year", req.Year,
		"generated", resp.Generated,
		"skipped", len(resp.Skipped),
		"created_by", createdBy,
	)

	if resp.Generated > 0 {
		events.PublishAfterCommit(ctx, s.publisher, events.PayrollGeneratedEvent{
			Month:       req.Month,
			Year:        req.Year,
			PayrollIDs:  ids,
			Generated:   resp.Generated,
			Skipped:     len(resp.Skipped),
			GeneratedBy: createdBy,
			GeneratedAt: s.clock.Now(),
		})
	}

	return resp, nil
}

func (s *PayrollServiceImpl) resolveTargets(ctx context.Context, employeeID *string) ([]employee.Employee, error) {
	if employeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *employeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, payroll.ErrEmployeeNotFound
			}
			return nil, err
		}
		return []employee.Employee{emp}, nil
	}

	active := employee.StatusActive
	return s.employeeRepo.List(ctx, employee.EmployeeFilter{Status: &active})
}

// generateOne returns a skip reason instead of an error for the benign cases.
func (s *PayrollServiceImpl) generateOne(ctx context.Context, emp employee.Employee, month, year int, createdBy string) (payroll.Payroll, string, error) {
	exists, err := s.payrollRepo.ExistsForPeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.Payroll{}, "", err
	}
	if exists {
		return payroll.Payroll{}, payroll.SkipReasonAlreadyGenerated, nil
	}

	active, err := s.salaryRepo.GetActiveByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, salary.ErrActiveSalaryNotFound) {
			return payroll.Payroll{}, payroll.SkipReasonNoActiveSalary, nil
		}
		return payroll.Payroll{}, "", err
	}

	p := payroll.Compute(active, emp.ID, emp.JoiningDate, month, year)
	processedOn := s.clock.Now()
	p.IsProcessed = true
	p.ProcessedOn = &processedOn
	p.ProcessedBy = &createdBy
	p.CreatedBy = createdBy

	created, err := s.payrollRepo.Create(ctx, p)
	if err != nil {
		// Another generation run got there first.
		if errors.Is(err, payroll.ErrPayrollAlreadyExists) {
			return payroll.Payroll{}, payroll.SkipReasonAlreadyGenerated, nil
		}
		return payroll.Payroll{}, "", err
	}
	return created, "", nil
}

func generationMessage(generated int, skipped []payroll.SkippedEmployee) string {
	msg := fmt.Sprintf("Successfully generated %d payroll record(s)", generated)
	if len(skipped) == 0 {
		return msg
	}

	counts := map[string]int{}
	var order []string
	for _, sk := range skipped {
		if counts[sk.Reason] == 0 {
			order = append(order, sk.Reason)
		}
		counts[sk.Reason]++
	}
	parts := make([]string, 0, len(order))
	for _, reason := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[reason], reason))
	}
	return fmt.Sprintf("%s. Skipped %d employee(s): %s", msg, len(skipped), strings.Join(parts, ", "))
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(p), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.NewPayrollResponse(p))
	}
	return responses, nil
}

// DeletePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	if err := s.payrollRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("payroll deleted", "payroll_id", id)
	return nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string) (payroll.PayslipDocument, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipDocument{}, err
	}

	content, err := s.renderer.RenderPayslip(p)
	if err != nil {
		slog.Error("failed to render payslip", "payroll_id", id, "error", err)
		return payroll.PayslipDocument{}, fmt.Errorf("render payslip: %w", err)
	}

	code := "employee"
	if p.EmployeeCode != nil {
		code = *p.EmployeeCode
	}
	return payroll.PayslipDocument{
		FileName: fmt.Sprintf("payslip_%s_%d_%02d.pdf", code, p.Year, p.Month),
		Content:  content,
	}, nil
}
