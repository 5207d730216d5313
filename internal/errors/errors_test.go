// Package errors tests for coded application errors.
package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestAppError_Error verifies the message format with and without a
// wrapped cause.
func TestAppError_Error(t *testing.T) {
	plain := New(ErrValidation, "bad input")
	if got := plain.Error(); got != "[VALIDATION_ERROR] bad input" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrStorage, "write failed", errors.New("disk full"))
	if got := wrapped.Error(); got != "[STORAGE_ERROR] write failed: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

// TestAppError_Unwrap verifies the cause stays reachable for errors.Is.
func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrInternal, "context", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
}

// TestIs verifies code matching through wrapping layers.
func TestIs(t *testing.T) {
	err := New(ErrNotFound, "missing")
	deep := fmt.Errorf("outer: %w", err)

	if !Is(deep, ErrNotFound) {
		t.Error("Is() missed a wrapped AppError")
	}
	if Is(deep, ErrValidation) {
		t.Error("Is() matched the wrong code")
	}
	if Is(nil, ErrNotFound) {
		t.Error("Is(nil) = true")
	}
	if Is(errors.New("plain"), ErrNotFound) {
		t.Error("Is(plain error) = true")
	}
}

// TestCodeOf verifies code extraction and the internal fallback.
func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrFormat, "bad file")); got != ErrFormat {
		t.Errorf("CodeOf() = %v, want FORMAT_ERROR", got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrInternal {
		t.Errorf("CodeOf(plain) = %v, want INTERNAL_ERROR", got)
	}
}
