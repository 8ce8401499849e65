package payroll

import "context"

type PayrollRepository interface {
	// Create fails with ErrPayrollAlreadyExists when the period is already taken.
	Create(ctx context.Context, p Payroll) (Payroll, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	Delete(ctx context.Context, id string) error
}
