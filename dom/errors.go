package dom

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrNotFound is returned if a required node could not be found.
var ErrNotFound = errors.New("node not found")

// ErrTypeMismatch is returned if a node has been found, but is not of the expected kind.
var ErrTypeMismatch = errors.New("node type mismatch")

// ErrInvalidSelector is returned if a CSS selector cannot be compiled.
var ErrInvalidSelector = errors.New("invalid selector")

// InvariantViolation is the panic value for broken internal consistency checks.
// It signals a programming error and is never returned as an error value.
type InvariantViolation struct {
	Msg string
}

func (iv InvariantViolation) Error() string {
	return "invariant violation: " + iv.Msg
}

// Invariant panics with an InvariantViolation if cond is false.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		msg := fmt.Sprintf(format, args...)
		tracer().Errorf("invariant violation: %s", msg)
		panic(InvariantViolation{Msg: msg})
	}
}

// NotFound wraps ErrNotFound with a description of what has been looked up.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// TypeMismatch wraps ErrTypeMismatch. The message names the context of the
// lookup, the expected kind and the node actually found.
func TypeMismatch(context string, expected Kind, actual *html.Node) error {
	return fmt.Errorf("%w: %s: expected %s, got %s", ErrTypeMismatch, context,
		expected.Name, Describe(actual))
}
