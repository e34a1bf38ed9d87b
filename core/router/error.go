package router

import (
	"errors"
	"fmt"
)

var (
	// Registration errors, raised with panic at the call site.
	ErrInvalidArgument = errors.New("invalid argument")

	// Returned when a required input is absent.
	ErrMissingArgument = errors.New("missing argument")

	// Returned when neither the requested path nor the default path
	// resolves to a handler.
	ErrRouteNotFound = errors.New("route not found")
)

// NotFoundError reports the path that failed to match.
// It unwraps to ErrRouteNotFound.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("route '%s' did not match", e.Path)
}

// Unwrap allows errors.Is(err, ErrRouteNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrRouteNotFound
}
