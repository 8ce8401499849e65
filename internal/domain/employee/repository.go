package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	SoftDelete(ctx context.Context, id string, deletedBy string) error
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	ExistsByDepartmentID(ctx context.Context, departmentID string) (bool, error)
	ExistsByDesignationID(ctx context.Context, designationID string) (bool, error)
	// NextPermanentCode atomically reserves the next EMP#### code.
	NextPermanentCode(ctx context.Context) (string, error)
}
