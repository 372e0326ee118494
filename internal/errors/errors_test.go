package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestUserError(t *testing.T) {
	t.Run("message_only", func(t *testing.T) {
		err := NewUserError(ErrEmptyTask, "type something")
		assert.Equal(t, "task text is required", err.Error())
		assert.True(t, errors.Is(err, ErrEmptyTask))
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewUserErrorWithField(ErrInvalidTime, "start", "25pm", "")
		assert.Equal(t, "invalid time of day: '25pm'", err.Error())
		assert.Equal(t, "start", err.Field)
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("adding entry: %w", NewUserError(ErrInvalidTimeRange, ""))
		ue, ok := AsUserError(err)
		require.True(t, ok)
		assert.Equal(t, ErrInvalidTimeRange, ue.Err)
		assert.True(t, IsUserError(err))
	})
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestStorageError(t *testing.T) {
	assert.NoError(t, StorageError("save", nil))

	cause := errors.New("disk on fire")
	err := StorageError("save schedule", cause)
	assert.True(t, IsSystemError(err))
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "save schedule")
	assert.Contains(t, err.Error(), "disk on fire")
}

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user", NewUserError(ErrEmptyDescription, ""), CategoryUser},
		{"storage", StorageError("load", errors.New("x")), CategorySystem},
		{"network", Wrap(ErrNetworkUnavailable, "apod"), CategoryNetwork},
		{"deadline", context.DeadlineExceeded, CategoryNetwork},
		{"plain", errors.New("boom"), CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "network", CategoryNetwork.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestFormatByCategory(t *testing.T) {
	assert.Equal(t, "", FormatByCategory(nil))

	msg := FormatByCategory(NewUserError(ErrInvalidTimeRange, ""))
	assert.Contains(t, msg, "start time must be before end time")
	assert.Contains(t, msg, "Try:")

	msg = FormatByCategory(StorageError("save", errors.New("eio")))
	assert.Contains(t, msg, "System error")
}

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, "", GetSuggestion(nil))
	assert.Equal(t, "custom", GetSuggestion(NewUserError(ErrEmptyTask, "custom")))
	assert.NotEmpty(t, GetSuggestion(NewUserError(ErrEmptyTask, "")))
	assert.Equal(t, "", GetSuggestion(errors.New("unknown")))
}
