package routing

import (
	"errors"
	"fmt"
)

// ErrRouteNotFound is returned when a route name is not registered.
// Callers check for it with errors.Is.
var ErrRouteNotFound = errors.New("routing: route not found")

// InvalidPatternError reports a path template that cannot be compiled:
// unbalanced braces, an unnamed placeholder, a duplicated placeholder
// name, or a constraint that is not a valid regular expression.
// It indicates a configuration bug and should abort startup.
type InvalidPatternError struct {
	Template string
	Reason   string
	Cause    error
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("routing: invalid pattern %q: %s", e.Template, e.Reason)
}

// Unwrap returns the underlying error, if any.
func (e *InvalidPatternError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *InvalidPatternError) Is(target error) bool {
	_, ok := target.(*InvalidPatternError)
	return ok || errors.Is(e.Cause, target)
}

// DuplicateRouteNameError reports an attempt to register a second route
// under an already-used name. It indicates a configuration bug and
// should abort startup.
type DuplicateRouteNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateRouteNameError) Error() string {
	return fmt.Sprintf("routing: duplicate route name %q", e.Name)
}

// Is checks if the error matches the target.
func (e *DuplicateRouteNameError) Is(target error) bool {
	_, ok := target.(*DuplicateRouteNameError)
	return ok
}

// NoRouteMatchedError reports that no registered route matched a request
// path. It carries the attempted path and method for diagnostics. An
// unmatched path is a routine outcome, not a failure: request-path
// callers convert it to an absent result rather than propagating it.
type NoRouteMatchedError struct {
	Path   string
	Method string
}

// Error implements the error interface.
func (e *NoRouteMatchedError) Error() string {
	return fmt.Sprintf("routing: no route matched %s %q", e.Method, e.Path)
}

// Is checks if the error matches the target.
func (e *NoRouteMatchedError) Is(target error) bool {
	_, ok := target.(*NoRouteMatchedError)
	return ok
}

// MissingParameterError reports URL generation for a route whose
// placeholder has neither a supplied value nor a default. Callers
// generate URLs for fixed, known routes, so this is a programmer error
// and always propagates.
type MissingParameterError struct {
	Route string
	Param string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("routing: route %q requires parameter %q", e.Route, e.Param)
}

// Is checks if the error matches the target.
func (e *MissingParameterError) Is(target error) bool {
	_, ok := target.(*MissingParameterError)
	return ok
}
