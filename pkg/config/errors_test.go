package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorFormatting(t *testing.T) {
	withField := NewValidationError("lease", "lease", "renewMinutes", fmt.Errorf("must be at least 1"))
	assert.Equal(t, "lease 'lease': field 'renewMinutes': must be at least 1", withField.Error())

	withoutField := NewValidationError("worker", "worker", "", fmt.Errorf("at least one pipeline kind required"))
	assert.Equal(t, "worker 'worker': at least one pipeline kind required", withoutField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := NewValidationError("progress", "progress", "logDir", fmt.Errorf("%w", ErrMissingRequiredField))
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestLoadErrorUnwrap(t *testing.T) {
	inner := errors.New("read failed")
	err := NewLoadError("pipeline.yaml", inner)

	assert.Contains(t, err.Error(), "pipeline.yaml")
	assert.ErrorIs(t, err, inner)
}
