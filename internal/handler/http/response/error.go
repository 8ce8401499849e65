package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps service errors to the response envelope. Anything that is
// not a validation error or an AppError is logged and reported as internal.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			slog.Error("request failed", "code", appErr.Code, "error", err)
			InternalServerError(w, apperror.ErrInternal.Message)
			return
		}
		Error(w, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	slog.Error("unhandled error", "error", err)
	InternalServerError(w, apperror.ErrInternal.Message)
}
