// Package errors defines the coded errors returned by cogmap.
//
// Every failure a caller may want to branch on carries a [Code]. Codes are
// stable strings that prefix the text of Error and can be matched with [Is]:
//
//	INVALID_XML        the export is not well-formed XML
//	INVALID_NUMBER     a refno or coordinate is not numeric
//	INVALID_BOLD_FLAG  a concept style bold flag is neither 0 nor 1
//	INVALID_COLOUR     a colour channel is outside 0-100
//	DUPLICATE_CONCEPT  two concepts share a refno
//
// Coded errors survive fmt.Errorf wrapping:
//
//	err := fmt.Errorf("styles: %w", errors.New(errors.ErrCodeInvalidBoldFlag, "got %d", 2))
//	errors.Is(err, errors.ErrCodeInvalidBoldFlag) // true
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidXML      Code = "INVALID_XML"
	ErrCodeInvalidNumber   Code = "INVALID_NUMBER"
	ErrCodeInvalidBoldFlag Code = "INVALID_BOLD_FLAG"
	ErrCodeInvalidColour   Code = "INVALID_COLOUR"
	ErrCodeInvalidScale    Code = "INVALID_SCALE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Invariant violations
	ErrCodeDuplicateConcept Code = "DUPLICATE_CONCEPT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text without the code prefix of the first
// *Error in the chain. Context added by outer wrapping is kept.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return strings.Replace(err.Error(), string(e.Code)+": ", "", 1)
}
