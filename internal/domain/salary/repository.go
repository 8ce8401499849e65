package salary

import (
	"context"
	"time"
)

type SalaryRepository interface {
	Create(ctx context.Context, salary Salary) (Salary, error)
	Update(ctx context.Context, salary Salary) (Salary, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Salary, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (Salary, error)
	// ListByEmployeeID returns the salary history, newest EffectiveFrom first.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Salary, error)
	// DeactivateActive closes every active salary of the employee and returns how many changed.
	DeactivateActive(ctx context.Context, employeeID string, effectiveTo time.Time, updatedBy string) (int64, error)
}
