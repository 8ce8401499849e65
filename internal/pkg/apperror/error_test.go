package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithf_KeepsSentinelIdentity(t *testing.T) {
	sentinel := InvalidState("Only sent offers can be accepted")

	err := Withf(sentinel, "Only sent offers can be accepted. Current status: %s", "Draft")

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, "Only sent offers can be accepted. Current status: Draft", err.Message)
	assert.Equal(t, CodeInvalidState, err.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("accept offer: %w", Conflict("Employee code already taken"))

	assert.Equal(t, CodeConflict, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeConflict))
	assert.Equal(t, CodeInternalError, CodeOf(errors.New("boom")))
	assert.False(t, IsCode(nil, CodeInternalError))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeConflict, "x", http.StatusConflict))
}

func TestWithf_ErrorIsMessageOnly(t *testing.T) {
	sentinel := InsufficientBalance("Insufficient leave balance")

	err := Withf(sentinel, "Insufficient leave balance. Available: %d days", 2)

	assert.Equal(t, "Insufficient leave balance. Available: 2 days", err.Error())
	assert.True(t, errors.Is(fmt.Errorf("create: %w", err), sentinel))
	assert.False(t, errors.Is(err, InsufficientBalance("Insufficient leave balance")))
}
