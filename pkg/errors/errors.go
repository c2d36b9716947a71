package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store lifecycle errors
	ErrNotDefined   ErrorCode = "NOT_DEFINED"
	ErrNotFileBound ErrorCode = "NOT_FILE_BOUND"

	// Schema and value errors
	ErrUnknownSetting  ErrorCode = "UNKNOWN_SETTING"
	ErrInvalidOption   ErrorCode = "INVALID_OPTION"
	ErrInvalidValue    ErrorCode = "INVALID_VALUE"
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Persistence errors
	ErrPersistenceIO ErrorCode = "PERSISTENCE_IO"
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Interaction errors
	ErrPrompt ErrorCode = "PROMPT"
)

// Detail keys shared by the store and schema packages
const (
	DetailSetting  = "setting"
	DetailValue    = "value"
	DetailIndex    = "index"
	DetailAccepted = "accepted"
	DetailPath     = "path"
	DetailReason   = "reason"
)

// Reasons attached to definition-time errors under DetailReason
const (
	ReasonEmptyOptions     = "empty_options"
	ReasonNotASequence     = "not_a_sequence"
	ReasonMultiKeyOption   = "multi_key_option"
	ReasonDuplicateKey     = "duplicate_key"
	ReasonEffectiveDefault = "default_is_effective_value"
	ReasonDefaultNotInOpts = "default_not_in_options"
	ReasonMissingField     = "missing_field"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// GetErrorDetail returns a single detail value, or nil if absent
func GetErrorDetail(err error, key string) interface{} {
	details := GetErrorDetails(err)
	if details == nil {
		return nil
	}
	return details[key]
}
