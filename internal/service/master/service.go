package master

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/department"
	"github.com/workaxis/hrms-backend-go/internal/domain/master/designation"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest, createdBy string) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest, updatedBy string) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Designation operations
	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest, createdBy string) (designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest, updatedBy string) (designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
	employeeRepo    employee.EmployeeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
		employeeRepo:    employeeRepo,
	}
}

func trimCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*code))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isActive(flag *bool) bool {
	return flag == nil || *flag
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest, createdBy string) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        trimCode(req.Code),
		Description: req.Description,
		IsActive:    isActive(req.IsActive),
		CreatedBy:   createdBy,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(d), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest, updatedBy string) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	existing.Name = strings.TrimSpace(req.Name)
	existing.Code = trimCode(req.Code)
	existing.Description = req.Description
	existing.IsActive = isActive(req.IsActive)
	existing.UpdatedBy = &updatedBy

	updated, err := s.departmentRepo.Update(ctx, existing)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.employeeRepo.ExistsByDepartmentID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check department usage: %w", err)
	}
	if inUse {
		return department.ErrDepartmentInUse
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("department deleted", "department_id", id)
	return nil
}

// ==================== DESIGNATION OPERATIONS ====================

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest, createdBy string) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{
		Title:       strings.TrimSpace(req.Title),
		Code:        trimCode(req.Code),
		Description: req.Description,
		Level:       req.Level,
		IsActive:    isActive(req.IsActive),
		CreatedBy:   createdBy,
	})
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	return designation.NewDesignationResponse(created), nil
}

func (s *masterServiceImpl) GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error) {
	d, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return designation.NewDesignationResponse(d), nil
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	designations, err := s.designationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]designation.DesignationResponse, 0, len(designations))
	for _, d := range designations {
		responses = append(responses, designation.NewDesignationResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest, updatedBy string) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	existing, err := s.designationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	existing.Title = strings.TrimSpace(req.Title)
	existing.Code = trimCode(req.Code)
	existing.Description = req.Description
	existing.Level = req.Level
	existing.IsActive = isActive(req.IsActive)
	existing.UpdatedBy = &updatedBy

	updated, err := s.designationRepo.Update(ctx, existing)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return designation.NewDesignationResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	if _, err := s.designationRepo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.employeeRepo.ExistsByDesignationID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check designation usage: %w", err)
	}
	if inUse {
		return designation.ErrDesignationInUse
	}

	if err := s.designationRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("designation deleted", "designation_id", id)
	return nil
}
