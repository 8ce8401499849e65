package employee

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound     = apperror.NotFound("Employee not found")
	ErrEmployeeCodeExists   = apperror.Duplicate("Employee code already exists")
	ErrEmailExists          = apperror.Duplicate("Email already exists")
	ErrEmployeeCodeConflict = apperror.Conflict("Employee code was taken concurrently, please retry")
	ErrInvalidTransition    = apperror.InvalidState("Employee status change is not allowed")
	ErrDepartmentNotFound   = apperror.NotFound("Department not found")
	ErrDesignationNotFound  = apperror.NotFound("Designation not found")
	ErrManagerNotFound      = apperror.NotFound("Reporting manager not found")
)
