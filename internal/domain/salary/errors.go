package salary

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrSalaryNotFound       = apperror.NotFound("Salary not found")
	ErrActiveSalaryNotFound = apperror.NotFound("No active salary found for employee")
	ErrEmployeeNotFound     = apperror.NotFound("Employee not found")
	ErrActiveSalaryConflict = apperror.Conflict("Another active salary was created concurrently, please retry")
)
