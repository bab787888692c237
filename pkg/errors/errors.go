// Package errors provides typed errors for diffscope.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of error
type Kind int

const (
	// KindNotInCI indicates no recognized CI provider was detected
	KindNotInCI Kind = iota
	// KindUnsupported indicates the provider/build-type combination has no
	// defined value for the requested field. This is an expected outcome,
	// not a bug; callers are meant to branch on it.
	KindUnsupported
	// KindVCS indicates a local version-control query failed
	KindVCS
	// KindHostAPI indicates a hosting-site metadata fetch failed
	KindHostAPI
	// KindConfig indicates a configuration error
	KindConfig
	// KindValidation indicates an input validation error
	KindValidation
)

// Error is the base error type for all diffscope errors
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", kindString(e.Kind), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", kindString(e.Kind), e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// IsKind checks if an error is of a specific kind
func IsKind(err error, kind Kind) bool {
	var derr *Error
	if err == nil {
		return false
	}
	if errors.As(err, &derr) {
		return derr.Kind == kind
	}
	return false
}

// IsUnsupported reports whether an error is the "unsupported by design"
// outcome, as opposed to a transient VCS or API failure.
func IsUnsupported(err error) bool {
	return IsKind(err, KindUnsupported)
}

// IsNotInCI reports whether an error means no CI provider was detected.
func IsNotInCI(err error) bool {
	return IsKind(err, KindNotInCI)
}

func kindString(k Kind) string {
	switch k {
	case KindNotInCI:
		return "NOT_IN_CI"
	case KindUnsupported:
		return "UNSUPPORTED"
	case KindVCS:
		return "VCS"
	case KindHostAPI:
		return "HOST_API"
	case KindConfig:
		return "CONFIG"
	case KindValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// NotInCI creates a not-in-CI error
func NotInCI(message string) *Error {
	return New(KindNotInCI, message, nil)
}

// Unsupported creates an unsupported-by-design error
func Unsupported(message string) *Error {
	return New(KindUnsupported, message, nil)
}

// Unsupportedf creates an unsupported-by-design error with formatting
func Unsupportedf(format string, args ...any) *Error {
	return New(KindUnsupported, fmt.Sprintf(format, args...), nil)
}

// VCS creates a version-control error
func VCS(message string, cause error) *Error {
	return New(KindVCS, message, cause)
}

// HostAPI creates a hosting-site API error
func HostAPI(message string, cause error) *Error {
	return New(KindHostAPI, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return New(KindConfig, message, cause)
}

// Validation creates a validation error
func Validation(message string, cause error) *Error {
	return New(KindValidation, message, cause)
}
