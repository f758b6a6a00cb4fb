package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates a resource with the same ID already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeMissingName indicates a descriptor without a name attribute
	CodeMissingName Code = "missing_name"

	// CodeInvalidType indicates a descriptor whose type attribute is absent or unknown
	CodeInvalidType Code = "invalid_type"

	// CodeInvalidKind indicates an attempt to register a descriptor of kind none
	CodeInvalidKind Code = "invalid_kind"

	// CodeReentrancyExhausted indicates every script execution slot is in use
	CodeReentrancyExhausted Code = "reentrancy_exhausted"

	// CodeScriptFault indicates the script runtime failed to load or run a chunk
	CodeScriptFault Code = "script_fault"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context (descriptor name, event, chunk)
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// MissingName creates the configuration error for a descriptor without a name
func MissingName() *Error {
	return New(CodeMissingName, "no name for creature event")
}

// InvalidTypef creates a formatted invalid type error
func InvalidTypef(format string, args ...any) *Error {
	return Newf(CodeInvalidType, format, args...)
}

// InvalidKind creates the registration error for a descriptor without a kind
func InvalidKind(name string) *Error {
	return New(CodeInvalidKind, "trying to register event without type").WithMeta("name", name)
}

// ReentrancyExhausted creates the error returned when no execution slot is free
func ReentrancyExhausted(slots int) *Error {
	return Newf(CodeReentrancyExhausted, "call stack overflow (%d slots in use)", slots)
}

// ScriptFault wraps a runtime failure
func ScriptFault(err error, chunk string) *Error {
	return WrapWithCode(err, CodeScriptFault, "script fault").WithMeta("chunk", chunk)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsReentrancyExhausted checks if every execution slot was in use
func IsReentrancyExhausted(err error) bool {
	return Is(err, CodeReentrancyExhausted)
}

// IsScriptFault checks if the error came out of the script runtime
func IsScriptFault(err error) bool {
	return Is(err, CodeScriptFault)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
