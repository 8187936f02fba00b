package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Wordly error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrLookupFailed   ErrorCode = "LOOKUP_FAILED"   // 502
	ErrStorage        ErrorCode = "STORAGE_FAILURE" // 500
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// WordlyError represents a structured error with code, status, and details.
type WordlyError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *WordlyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *WordlyError) Unwrap() error {
	return e.Err
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *WordlyError {
	return &WordlyError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a headword that has no entry.
func NewNotFound(headword string) *WordlyError {
	return &WordlyError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("word not found: %s", headword),
		Details: map[string]any{"word": headword},
	}
}

// NewLookupFailed creates a 502 error when the dictionary service cannot answer.
func NewLookupFailed(headword string, err error) *WordlyError {
	msg := fmt.Sprintf("dictionary lookup failed for %q", headword)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &WordlyError{
		Code:    ErrLookupFailed,
		Status:  502,
		Message: msg,
		Details: map[string]any{"word": headword},
		Err:     err,
	}
}

// NewStorage creates a 500 error for a failed read, parse, or write of stored history.
func NewStorage(op string, err error) *WordlyError {
	msg := fmt.Sprintf("history %s failed", op)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &WordlyError{
		Code:    ErrStorage,
		Status:  500,
		Message: msg,
		Details: map[string]any{"operation": op},
		Err:     err,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *WordlyError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &WordlyError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
		Err:     err,
	}
}

// As returns the first WordlyError in err's chain.
func As(err error) (*WordlyError, bool) {
	var wErr *WordlyError
	if stderrors.As(err, &wErr) {
		return wErr, true
	}
	return nil, false
}

// Is checks if an error is (or wraps) a WordlyError with the given code.
func Is(err error, code ErrorCode) bool {
	if wErr, ok := As(err); ok {
		return wErr.Code == code
	}
	return false
}
