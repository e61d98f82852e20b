package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "patient not found", NotFound("patient", nil).Error())

	cause := errors.New("connection refused")
	err := Persistence("insert failed", cause)
	assert.Equal(t, "insert failed: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("patient", nil)))
	assert.True(t, IsValidation(Validation("name is required", nil)))
	assert.True(t, IsConflict(Conflict("already cancelled", nil)))
	assert.True(t, IsPersistence(Persistence("write failed", nil)))
	assert.True(t, IsUnauthorized(Unauthorized(nil)))

	assert.False(t, IsNotFound(Validation("nope", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load history: %w", NotFound("patient", nil))
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, NotFound("anything", nil)))
}

func TestIsMatchesByKind(t *testing.T) {
	assert.True(t, errors.Is(NotFound("patient", nil), NotFound("service", nil)))
	assert.False(t, errors.Is(NotFound("patient", nil), Conflict("x", nil)))
}
