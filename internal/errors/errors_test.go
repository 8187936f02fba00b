package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWordlyError_Error(t *testing.T) {
	err := &WordlyError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "word not found",
	}

	expected := "NOT_FOUND: word not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("headword is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "headword is required" {
		t.Errorf("Message = %q, want %q", err.Message, "headword is required")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("serendipity")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["word"] != "serendipity" {
		t.Errorf("Details[word] = %v, want %q", err.Details["word"], "serendipity")
	}
}

func TestNewLookupFailed(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewLookupFailed("time", cause)

	if err.Code != ErrLookupFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrLookupFailed)
	}
	if err.Status != 502 {
		t.Errorf("Status = %d, want 502", err.Status)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected lookup error to unwrap to its cause")
	}
}

func TestNewStorage(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorage("write", cause)

	if err.Code != ErrStorage {
		t.Errorf("Code = %q, want %q", err.Code, ErrStorage)
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}
	if err.Message != "history write failed: disk full" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Details["operation"] != "write" {
		t.Errorf("Details[operation] = %v, want %q", err.Details["operation"], "write")
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("boom"))
	if err.Code != ErrInternal || err.Status != 500 {
		t.Errorf("got %s/%d, want INTERNAL/500", err.Code, err.Status)
	}
	if err.Message != "boom" {
		t.Errorf("Message = %q, want %q", err.Message, "boom")
	}

	err = NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", NewNotFound("x"), ErrNotFound, true},
		{"different code", NewNotFound("x"), ErrStorage, false},
		{"wrapped", fmt.Errorf("show: %w", NewNotFound("x")), ErrNotFound, true},
		{"plain error", fmt.Errorf("plain"), ErrInternal, false},
		{"nil", nil, ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}
