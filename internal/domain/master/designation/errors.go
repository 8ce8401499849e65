package designation

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrDesignationNotFound   = apperror.NotFound("Designation not found")
	ErrDesignationCodeExists = apperror.Duplicate("Designation code already exists")
	ErrDesignationInUse      = apperror.InvalidState("Cannot delete designation with assigned employees")
)
