package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "with cause",
			err:      NewParsingError("bad timestamp", fmt.Errorf("cannot parse")),
			expected: "[PARSING] bad timestamp: cannot parse",
		},
		{
			name:     "without cause",
			err:      NewValidationError("no qualifying trainers", nil),
			expected: "[VALIDATION] no qualifying trainers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := NewStorageError("cannot read feedback file", cause)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(fmt.Errorf("load: %w", err), &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestWithContext(t *testing.T) {
	err := NewNotFoundError("results file missing", nil).
		WithContext("path", "output/results.json")

	assert.Equal(t, "output/results.json", err.Context["path"])
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeConfig, GetType(NewConfigError("bad threshold", nil)))
	assert.Equal(t, ErrorType(""), GetType(fmt.Errorf("plain")))
}
