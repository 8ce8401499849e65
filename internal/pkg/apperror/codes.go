package apperror

import "net/http"

const (
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeInvalidState        = "INVALID_STATE"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeDuplicate           = "DUPLICATE"
	CodeConflict            = "CONFLICT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternalError       = "INTERNAL_ERROR"
)

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func InvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusUnprocessableEntity)
}

func InsufficientBalance(message string) *AppError {
	return New(CodeInsufficientBalance, message, http.StatusUnprocessableEntity)
}

func Duplicate(message string) *AppError {
	return New(CodeDuplicate, message, http.StatusConflict)
}

// Conflict marks a concurrency race detected by the store. Clients may retry.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

var ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
