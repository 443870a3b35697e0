package errors

import (
	"errors"
	"net/http"

	"github.com/xraph/go-utils/errs"
)

// Error code constants for structured errors.
const (
	CodeInvalidConfig   = "INVALID_CONFIG"
	CodeMenuNotFound    = "MENU_NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeRenderFailed    = "RENDER_FAILED"
	CodeLifecycleError  = "LIFECYCLE_ERROR"
)

// DashboardError represents a structured error with a code.
type DashboardError = errs.Error

// ErrInvalidConfig creates a configuration error for the given key.
func ErrInvalidConfig(key string, cause error) *DashboardError {
	return errs.NewError(CodeInvalidConfig, "invalid configuration for key '"+key+"'", cause)
}

// ErrMenuNotFound is returned when no mounted account menu has the given id.
func ErrMenuNotFound(id string) *DashboardError {
	return errs.NewError(CodeMenuNotFound, "account menu '"+id+"' is not mounted", nil)
}

// ErrUnauthenticated is returned when a request has no current user.
func ErrUnauthenticated(operation string) *DashboardError {
	return errs.NewError(CodeUnauthenticated, "no authenticated user for "+operation, nil)
}

// ErrRenderFailed wraps a failure while writing HTML.
func ErrRenderFailed(component string, cause error) *DashboardError {
	return errs.NewError(CodeRenderFailed, "failed to render "+component, cause)
}

// ErrLifecycleError wraps a start/stop failure.
func ErrLifecycleError(phase string, cause error) *DashboardError {
	return errs.NewError(CodeLifecycleError, "lifecycle error during "+phase, cause)
}

// Sentinel errors that can be used with errors.Is comparisons.
var (
	ErrInvalidConfigSentinel   = &DashboardError{Code: CodeInvalidConfig}
	ErrMenuNotFoundSentinel    = &DashboardError{Code: CodeMenuNotFound}
	ErrUnauthenticatedSentinel = &DashboardError{Code: CodeUnauthenticated}
	ErrRenderFailedSentinel    = &DashboardError{Code: CodeRenderFailed}
	ErrLifecycleErrorSentinel  = &DashboardError{Code: CodeLifecycleError}
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsMenuNotFound checks if the error is a menu not found error.
func IsMenuNotFound(err error) bool {
	return Is(err, ErrMenuNotFoundSentinel)
}

// IsInvalidConfig checks if the error is a configuration error.
func IsInvalidConfig(err error) bool {
	return Is(err, ErrInvalidConfigSentinel)
}

// HTTPStatus maps an error to the status code a handler should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case Is(err, ErrMenuNotFoundSentinel):
		return http.StatusNotFound
	case Is(err, ErrUnauthenticatedSentinel):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
