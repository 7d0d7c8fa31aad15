package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation.Status())
	assert.Equal(t, http.StatusUnauthorized, Authentication.Status())
	assert.Equal(t, http.StatusNotFound, NotFound.Status())
	assert.Equal(t, http.StatusConflict, Conflict.Status())
	assert.Equal(t, http.StatusInternalServerError, Internal.Status())
}

func TestKindCode(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", Validation.Code())
	assert.Equal(t, "AUTHENTICATION_ERROR", Authentication.Code())
	assert.Equal(t, "NOT_FOUND", NotFound.Code())
	assert.Equal(t, "CONFLICT", Conflict.Code())
	assert.Equal(t, "INTERNAL_ERROR", Internal.Code())
}

func TestErrorMessage(t *testing.T) {
	err := New(Validation, "username is required")
	assert.Equal(t, "username is required", err.Error())
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(NotFound, "Player with ID '%s' not found", "plr_123")
	assert.Equal(t, NotFound, err.Kind)
	assert.Equal(t, "Player with ID 'plr_123' not found", err.Message)
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Authentication failed", NewAuthentication("").Message)
	assert.Equal(t, "Resource not found", NewNotFound("").Message)
	assert.Equal(t, "Resource conflict", NewConflict("").Message)
	assert.Equal(t, "An unexpected error occurred", NewInternal().Message)
}

func TestExplicitMessagesKept(t *testing.T) {
	assert.Equal(t, "Invalid username or password", NewAuthentication("Invalid username or password").Message)
	assert.Equal(t, "User not found", NewNotFound("User not found").Message)
}

func TestErrorsAsUnwrapsThroughWrapping(t *testing.T) {
	inner := NewConflict("Username 'alice' already exists")
	wrapped := fmt.Errorf("create failed: %w", inner)

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, Conflict, appErr.Kind)
}
