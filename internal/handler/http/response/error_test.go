package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError_ValidationErrors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add("month", "month must be between 1 and 12")

	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("generate: %w", errs.Err()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperror.CodeValidation, resp.Error.Code)
	assert.Equal(t, "month must be between 1 and 12", resp.Error.Details["month"])
}

func TestHandleError_AppErrors(t *testing.T) {
	sentinel := apperror.InvalidState("Only sent offers can be accepted")

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", apperror.NotFound("Offer letter not found"), http.StatusNotFound, apperror.CodeNotFound, "Offer letter not found"},
		{"dynamic message", apperror.Withf(sentinel, "Only sent offers can be accepted. Current status: %s", "Draft"),
			http.StatusUnprocessableEntity, apperror.CodeInvalidState, "Only sent offers can be accepted. Current status: Draft"},
		{"wrapped duplicate", fmt.Errorf("create: %w", apperror.Duplicate("Template name already exists")),
			http.StatusConflict, apperror.CodeDuplicate, "Template name already exists"},
		{"internal hides cause", apperror.Wrap(errors.New("pq: relation missing"), apperror.CodeInternalError, "boom", http.StatusInternalServerError),
			http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	resp := decode(t, rec)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "payslip_EMP0001_2024_06.pdf", "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip_EMP0001_2024_06.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}
