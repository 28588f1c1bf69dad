// Package errors defines the stable error codes reported by initialize-repository.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Printed verbatim on stderr; do not rename.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Preconditions (checked before any mutation)
	ENoRepo             Code = "E_NO_REPO"
	EAlreadyInitialized Code = "E_ALREADY_INITIALIZED"
	EInvalidProjectName Code = "E_INVALID_PROJECT_NAME"
	EReadInput          Code = "E_READ_INPUT"

	// Traversal and rewrite
	EScanFailed    Code = "E_SCAN_FAILED"
	ERewriteFailed Code = "E_REWRITE_FAILED"
	EPersistFailed Code = "E_PERSIST_FAILED"
)

// InitError is the standard error type for initialize-repository errors.
type InitError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *InitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *InitError) Unwrap() error {
	return e.Cause
}

// New creates a new InitError with the given code and message.
func New(code Code, msg string) error {
	return &InitError{Code: code, Msg: msg}
}

// NewWithDetails creates a new InitError with code, message, and details.
// The details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &InitError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new InitError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &InitError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new InitError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &InitError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not an InitError.
func GetCode(err error) Code {
	if ie, ok := AsInitError(err); ok {
		return ie.Code
	}
	return ""
}

// AsInitError returns (*InitError, true) if err is or wraps an InitError.
func AsInitError(err error) (*InitError, bool) {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	if ie, ok := AsInitError(err); ok {
		fmt.Fprintf(w, "error_code: %s\n", ie.Code)
		fmt.Fprintln(w, ie.Msg)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
