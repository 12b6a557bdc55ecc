package errors

import (
	"errors"
	"fmt"
)

// Exit codes for packcfg
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUnknownMode   = 2
	ExitUnknownPreset = 3
	ExitConfigError   = 4
	ExitPresetInvalid = 5
	ExitRenderError   = 6
	ExitBundlerFailed = 7
)

// Error is the base error type for packcfg
type Error struct {
	Code    int
	Message string
	Name    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *Error) ExitCode() int {
	return e.Code
}

// New creates a new Error
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(code int, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// UnknownMode returns an error for a mode with no registered fragment
func UnknownMode(name string) *Error {
	return &Error{
		Code:    ExitUnknownMode,
		Message: fmt.Sprintf("unknown mode: %s", name),
		Name:    name,
	}
}

// UnknownPreset returns an error for a preset with no registered fragment
func UnknownPreset(name string) *Error {
	return &Error{
		Code:    ExitUnknownPreset,
		Message: fmt.Sprintf("unknown preset: %s", name),
		Name:    name,
	}
}

// PresetInvalid returns an error for a preset that exists but cannot be read
func PresetInvalid(name string, cause error) *Error {
	return &Error{
		Code:    ExitPresetInvalid,
		Message: fmt.Sprintf("invalid preset %s", name),
		Name:    name,
		Cause:   cause,
	}
}

// ConfigError returns an error for settings issues
func ConfigError(message string, cause error) *Error {
	return Wrap(ExitConfigError, message, cause)
}

// RenderError returns an error for output failures
func RenderError(message string, cause error) *Error {
	return Wrap(ExitRenderError, message, cause)
}

// BundlerFailed returns an error for a failed bundler run
func BundlerFailed(command string, cause error) *Error {
	return Wrap(ExitBundlerFailed, fmt.Sprintf("bundler %q failed", command), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *Error {
	return New(ExitGeneralError, message)
}

// IsUnknownMode reports whether err carries an UnknownMode error
func IsUnknownMode(err error) bool {
	return GetExitCode(err) == ExitUnknownMode
}

// IsUnknownPreset reports whether err carries an UnknownPreset error
func IsUnknownPreset(err error) bool {
	return GetExitCode(err) == ExitUnknownPreset
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var pkgErr *Error
	if errors.As(err, &pkgErr) {
		return pkgErr.ExitCode()
	}
	return ExitGeneralError
}

// NameOf returns the offending identifier carried by err, if any
func NameOf(err error) string {
	var pkgErr *Error
	if errors.As(err, &pkgErr) {
		return pkgErr.Name
	}
	return ""
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
