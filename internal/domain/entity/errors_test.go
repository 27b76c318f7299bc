package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create article: %w", &ValidationError{Field: "content", Message: "is required"})

	assert.EqualError(t, err, "create article: content: is required")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "content", vErr.Field)
}

func TestValidationError_NotOtherErrors(t *testing.T) {
	assert.NotErrorIs(t, errors.New("content: is required"), ErrInvalidInput)
}
