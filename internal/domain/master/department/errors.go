package department

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrDepartmentNotFound   = apperror.NotFound("Department not found")
	ErrDepartmentCodeExists = apperror.Duplicate("Department code already exists")
	ErrDepartmentInUse      = apperror.InvalidState("Cannot delete department with assigned employees")
)
