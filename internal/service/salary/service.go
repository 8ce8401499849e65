package salary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	txManager    database.TxManager
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewSalaryService(txManager database.TxManager, salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		txManager:    txManager,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

// Activate stores s as the employee's only active salary. Salaries active
// before it are closed the day before s takes effect. Call it inside a transaction.
func Activate(ctx context.Context, repo salary.SalaryRepository, s salary.Salary) (salary.Salary, error) {
	closed, err := repo.DeactivateActive(ctx, s.EmployeeID, salary.SupersededEffectiveTo(s.EffectiveFrom), s.CreatedBy)
	if err != nil {
		return salary.Salary{}, err
	}
	if closed > 0 {
		slog.Info("previous salary deactivated", "employee_id", s.EmployeeID, "count", closed)
	}

	s.IsActive = true
	s.EffectiveTo = nil
	s.Recalculate()
	return repo.Create(ctx, s)
}

// Create implements salary.SalaryService.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest, createdBy string) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.SalaryResponse{}, salary.ErrEmployeeNotFound
		}
		return salary.SalaryResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	var created salary.Salary
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = Activate(ctx, s.salaryRepo, salary.Salary{
			EmployeeID:    req.EmployeeID,
			Components:    req.Components,
			EffectiveFrom: effectiveFrom,
			CreatedBy:     createdBy,
		})
		return err
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	slog.Info("salary created", "salary_id", created.ID, "employee_id", created.EmployeeID, "gross", created.GrossSalary.StringFixed(2))
	return salary.NewSalaryResponse(created), nil
}

// Update implements salary.SalaryService. Totals are always recomputed.
func (s *SalaryServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRequest, updatedBy string) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	existing, err := s.salaryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	existing.Components = req.Components
	if req.EffectiveFrom != "" {
		existing.EffectiveFrom, _ = validator.IsValidDate(req.EffectiveFrom)
	}
	existing.Recalculate()
	existing.UpdatedBy = &updatedBy

	updated, err := s.salaryRepo.Update(ctx, existing)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return salary.NewSalaryResponse(updated), nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.salaryRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("salary deleted", "salary_id", id)
	return nil
}

// GetByID implements salary.SalaryService.
func (s *SalaryServiceImpl) GetByID(ctx context.Context, id string) (salary.SalaryResponse, error) {
	sal, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return salary.NewSalaryResponse(sal), nil
}

// GetActive implements salary.SalaryService.
func (s *SalaryServiceImpl) GetActive(ctx context.Context, employeeID string) (salary.SalaryResponse, error) {
	sal, err := s.salaryRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return salary.NewSalaryResponse(sal), nil
}

// History implements salary.SalaryService.
func (s *SalaryServiceImpl) History(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, salary.ErrEmployeeNotFound
		}
		return nil, err
	}

	salaries, err := s.salaryRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(salaries))
	for _, sal := range salaries {
		responses = append(responses, salary.NewSalaryResponse(sal))
	}
	return responses, nil
}
