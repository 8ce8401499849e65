package salary

import "context"

type SalaryService interface {
	Create(ctx context.Context, req CreateSalaryRequest, createdBy string) (SalaryResponse, error)
	Update(ctx context.Context, req UpdateSalaryRequest, updatedBy string) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	GetActive(ctx context.Context, employeeID string) (SalaryResponse, error)
	History(ctx context.Context, employeeID string) ([]SalaryResponse, error)
}
