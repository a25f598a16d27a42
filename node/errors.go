package node

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownName     = fmt.Errorf("%w: unknown name", ErrInvalidArgument)
	ErrNilReference    = fmt.Errorf("%w: nil reference on path", ErrInvalidArgument)
	ErrNotAddressable  = fmt.Errorf("%w: target is not addressable", ErrInvalidArgument)
	ErrNilTarget       = fmt.Errorf("%w: target is nil", ErrInvalidArgument)
)

// UnknownNameError reports a requested name that the target does not declare.
type UnknownNameError struct {
	// Name is the requested name exactly as the caller passed it.
	Name string
	// Set is the name set the name came from, "cleanup" or "output". Empty when unknown.
	Set string
	// Target is the type of the processed value.
	Target string
	// Suggestion is the closest declared name, if any is close enough.
	Suggestion string
}

func (e *UnknownNameError) Error() string {
	var b strings.Builder

	b.WriteString("invalid argument: unknown ")
	if e.Set != "" {
		b.WriteString(e.Set)
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "name %q", e.Name)
	if e.Target != "" {
		fmt.Fprintf(&b, " on %s", e.Target)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, ", did you mean %q?", e.Suggestion)
	}

	return b.String()
}

func (e *UnknownNameError) Unwrap() error { return ErrUnknownName }
