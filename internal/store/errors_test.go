package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrTaskNotFound",
			err:      ErrTaskNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrUserNotFound",
			err:      fmt.Errorf("failed to find user: %w", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	if errors.Is(ErrTaskNotFound, ErrUserNotFound) {
		t.Error("ErrTaskNotFound must not match ErrUserNotFound")
	}
	if errors.Is(ErrUserNotFound, ErrTaskNotFound) {
		t.Error("ErrUserNotFound must not match ErrTaskNotFound")
	}
}

func TestStoreError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StoreError
		expected string
	}{
		{
			name:     "with wrapped error",
			err:      NewStoreError("task", "update", "merge failed", ErrTaskNotFound),
			expected: "update operation on task failed: merge failed: entity not found: task",
		},
		{
			name:     "without wrapped error",
			err:      NewStoreError("user", "create", "insert failed", nil),
			expected: "create operation on user failed: insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}

	wrapped := NewStoreError("task", "get", "lookup failed", ErrTaskNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("StoreError should unwrap to ErrNotFound")
	}
}
