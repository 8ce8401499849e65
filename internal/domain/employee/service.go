package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest, createdBy string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest, updatedBy string) (EmployeeResponse, error)
	ChangeStatus(ctx context.Context, req ChangeStatusRequest, updatedBy string) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string, deletedBy string) error
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
}
