package template

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrTemplateNotFound        = apperror.NotFound("Template not found")
	ErrDefaultTemplateNotFound = apperror.NotFound("No default template found")
	ErrTemplateNameExists      = apperror.Duplicate("Template name already exists")
	ErrCannotDeleteDefault     = apperror.InvalidState("Cannot delete the default template")
	ErrDefaultConflict         = apperror.Conflict("Default template was changed concurrently, please retry")
)
