package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
	"github.com/workaxis/hrms-backend-go/internal/pkg/database"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	txManager       database.TxManager
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	clock           clock.Clock
}

func NewEmployeeService(
	txManager database.TxManager,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:       txManager,
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		clock:           clk,
	}
}

// checkReferences verifies department, designation and manager exist.
func (s *EmployeeServiceImpl) checkReferences(ctx context.Context, departmentID, designationID string, managerID *string) error {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	if _, err := s.designationRepo.GetByID(ctx, designationID); err != nil {
		if errors.Is(err, designation.ErrDesignationNotFound) {
			return employee.ErrDesignationNotFound
		}
		return fmt.Errorf("failed to get designation: %w", err)
	}
	if managerID != nil && *managerID != "" {
		if _, err := s.employeeRepo.GetByID(ctx, *managerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrManagerNotFound
			}
			return fmt.Errorf("failed to get reporting manager: %w", err)
		}
	}
	return nil
}

func parseOptionalDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, _ := validator.IsValidDate(*value)
	return &t
}

func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest, createdBy string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkReferences(ctx, req.DepartmentID, req.DesignationID, req.ReportingManagerID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusDraft
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)
	newEmployee := employee.Employee{
		EmployeeCode:       strings.TrimSpace(req.EmployeeCode),
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              nonEmpty(req.Phone),
		Address:            nonEmpty(req.Address),
		DateOfBirth:        parseOptionalDate(req.DateOfBirth),
		DepartmentID:       req.DepartmentID,
		DesignationID:      req.DesignationID,
		ReportingManagerID: nonEmpty(req.ReportingManagerID),
		JoiningDate:        joiningDate,
		Status:             status,
		CreatedBy:          createdBy,
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		newEmployee.Gender = &g
	}

	var created employee.Employee
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if newEmployee.EmployeeCode == "" {
			if status == employee.StatusDraft {
				newEmployee.EmployeeCode = employee.NewDraftCode()
			} else {
				code, err := s.employeeRepo.NextPermanentCode(ctx)
				if err != nil {
					return err
				}
				newEmployee.EmployeeCode = code
			}
		}

		var err error
		created, err = s.employeeRepo.Create(ctx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode, "status", created.Status)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest, updatedBy string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.ReportingManagerID != nil && *req.ReportingManagerID == existing.ID {
		return employee.EmployeeResponse{}, apperror.Validation("Employee cannot report to themselves")
	}
	if err := s.checkReferences(ctx, req.DepartmentID, req.DesignationID, req.ReportingManagerID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)
	existing.FirstName = strings.TrimSpace(req.FirstName)
	existing.LastName = strings.TrimSpace(req.LastName)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = nonEmpty(req.Phone)
	existing.Address = nonEmpty(req.Address)
	existing.DateOfBirth = parseOptionalDate(req.DateOfBirth)
	existing.DepartmentID = req.DepartmentID
	existing.DesignationID = req.DesignationID
	existing.ReportingManagerID = nonEmpty(req.ReportingManagerID)
	existing.JoiningDate = joiningDate
	existing.UpdatedBy = &updatedBy
	existing.Gender = nil
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		existing.Gender = &g
	}

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// ChangeStatus implements employee.EmployeeService. A draft activated here
// receives its permanent code the same way offer acceptance assigns one.
func (s *EmployeeServiceImpl) ChangeStatus(ctx context.Context, req employee.ChangeStatusRequest, updatedBy string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	target := employee.Status(req.Status)

	var updated employee.Employee
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.employeeRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !employee.CanTransition(e.Status, target) {
			return apperror.Withf(employee.ErrInvalidTransition,
				"Cannot change employee status from %s to %s", e.Status.Label(), target.Label())
		}

		if e.Status == employee.StatusDraft && employee.IsDraftCode(e.EmployeeCode) {
			code, err := s.employeeRepo.NextPermanentCode(ctx)
			if err != nil {
				return err
			}
			e.EmployeeCode = code
		}
		if target == employee.StatusRelieved || target == employee.StatusTerminated {
			relieving := clock.Today(s.clock)
			if d := parseOptionalDate(req.RelievingDate); d != nil {
				relieving = *d
			}
			e.RelievingDate = &relieving
		}
		if target == employee.StatusActive {
			e.RelievingDate = nil
		}

		e.Status = target
		e.UpdatedBy = &updatedBy
		updated, err = s.employeeRepo.Update(ctx, e)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee status changed", "employee_id", updated.ID, "status", updated.Status)
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string, deletedBy string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return err
	}
	slog.Info("employee deleted", "employee_id", id, "deleted_by", deletedBy)
	return nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}
