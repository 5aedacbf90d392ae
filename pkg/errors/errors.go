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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Virtual environment errors
	ErrNotAVirtualEnv    ErrorCode = "NOT_A_VIRTUALENV"
	ErrNoVirtualEnvFound ErrorCode = "NO_VIRTUALENV_FOUND"
	ErrNoPatterns        ErrorCode = "NO_PATTERNS"
	ErrNoSelection       ErrorCode = "NO_SELECTION"
	ErrNoActivateScript  ErrorCode = "NO_ACTIVATE_SCRIPT"

	// Registry errors
	ErrNotADirectory        ErrorCode = "NOT_A_DIRECTORY"
	ErrPathExistsNotSymlink ErrorCode = "PATH_EXISTS_NOT_SYMLINK"
	ErrNamesLengthMismatch  ErrorCode = "NAMES_LENGTH_MISMATCH"
	ErrLinkConflict         ErrorCode = "LINK_CONFLICT"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"

	// External tool errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrKernelspec    ErrorCode = "KERNELSPEC"
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

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func build(code ErrorCode, message string, wrapped error) *Error {
	return &Error{Code: code, Message: message, Details: map[string]interface{}{}, Wrapped: wrapped}
}

// New creates an Error with code and message.
func New(code ErrorCode, message string) *Error {
	return build(code, message, nil)
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsErrorCode reports whether err, or anything it wraps, is an *Error
// with code.
func IsErrorCode(err error, code ErrorCode) bool {
	e := asError(err)
	return e != nil && e.Code == code
}

// GetErrorCode returns err's code, or ErrUnknown for foreign errors.
func GetErrorCode(err error) ErrorCode {
	if e := asError(err); e != nil {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns err's details, or nil for foreign errors.
func GetErrorDetails(err error) map[string]interface{} {
	if e := asError(err); e != nil {
		return e.Details
	}
	return nil
}
