package reshape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/starkandwayne/goutils/ansi"

	"github.com/graftlang/reshape/log"
)

// ErrorType categorizes a ReshapeError, grounded on the teacher's
// GraftError taxonomy (pkg/graft/errors.go).
type ErrorType string

const (
	ParseErrorType         ErrorType = "parse_error"
	EvaluationErrorType    ErrorType = "evaluation_error"
	OperatorErrorType      ErrorType = "operator_error"
	ConfigurationErrorType ErrorType = "configuration_error"
	ValidationErrorType    ErrorType = "validation_error"
)

// ReshapeError is the base error type surfaced by the validator (§4.5) and
// by ambient tooling (CLI, MCP server). The evaluator itself never returns
// one — per spec.md §7, execute absorbs every internal failure into
// identity-on-that-step and never raises past its own boundary.
type ReshapeError struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

func (e *ReshapeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s at %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ReshapeError) Unwrap() error { return e.Cause }

func newError(t ErrorType, path, message string, cause error) *ReshapeError {
	return &ReshapeError{Type: t, Message: message, Path: path, Cause: cause}
}

// NewValidationError builds a ValidationErrorType error.
func NewValidationError(message string) *ReshapeError {
	return newError(ValidationErrorType, "", message, nil)
}

// NewConfigurationError builds a ConfigurationErrorType error.
func NewConfigurationError(message string) *ReshapeError {
	return newError(ConfigurationErrorType, "", message, nil)
}

// NewOperatorError builds an OperatorErrorType error scoped to one step.
func NewOperatorError(op, path, message string) *ReshapeError {
	return newError(OperatorErrorType, path, fmt.Sprintf("operator %q: %s", op, message), nil)
}

// MultiError aggregates zero or more errors, used by the validator to
// collect every offending pipeline step rather than stopping at the
// first. Grounded on pkg/graft/errors.go's MultiError.
type MultiError struct {
	Errors []error
}

func (e MultiError) Error() string {
	lines := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		lines = append(lines, fmt.Sprintf(" - %s", err))
	}
	sort.Strings(lines)
	return ansi.Sprintf("@r{%d} error(s) detected:\n%s\n", len(e.Errors), strings.Join(lines, "\n"))
}

// Append adds err to the aggregate, flattening nested MultiErrors and
// ignoring nil.
func (e *MultiError) Append(err error) {
	if err == nil {
		return
	}
	if mult, ok := err.(MultiError); ok {
		e.Errors = append(e.Errors, mult.Errors...)
		return
	}
	e.Errors = append(e.Errors, err)
}

// Count returns the number of collected errors.
func (e *MultiError) Count() int { return len(e.Errors) }

// First returns a string describing the first offending step, matching
// spec.md §4.5 ("validation failure yields a single error string naming
// the first offending step"). Empty when there are no errors.
func (e MultiError) First() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Error()
}

// stepWarning reports (to stderr, ansi-colorized, DEBUG-gated) that a
// pipeline step's own failure was absorbed into identity, per the error
// policy in spec.md §7. It never affects execute's return value; it only
// helps someone running with --debug see what got swallowed.
func stepWarning(op string, path string, cause error) {
	if cause == nil || !log.DebugOn {
		return
	}
	if path != "" {
		log.Warn("step %q at %q left working unchanged: %s", op, path, cause)
	} else {
		log.Warn("step %q left working unchanged: %s", op, cause)
	}
}
