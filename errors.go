package vouch

import (
	"errors"
	"fmt"
)

// ErrEmptyChain is returned by TryNew when the chain contains no filters.
// A validator with nothing to check would vouch for anything.
var ErrEmptyChain = errors.New("chain must contain at least one filter")

// ValidationError reports the first filter that rejected a state.
//
// State carries the rejected value back to the caller. Rejection is terminal
// for the attempt, but ownership of the state returns here so the caller can
// repair it and try again. The Validated handle is never constructed on the
// rejection path, so the state is owned by exactly one place at all times.
type ValidationError[S any] struct {
	// State is the rejected value, returned to the caller for recovery.
	State S

	// Index is the position of the failing filter in declared chain order.
	Index int

	// Name is the failing filter's name, or "" if it was not wrapped with
	// Named.
	Name string

	// Err is the diagnostic produced by the failing filter.
	Err error
}

// Error describes the failing filter and its diagnostic.
func (e *ValidationError[S]) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("filter %q (index %d) rejected state: %v", e.Name, e.Index, e.Err)
	}
	return fmt.Sprintf("filter at index %d rejected state: %v", e.Index, e.Err)
}

// Unwrap returns the failing filter's diagnostic.
func (e *ValidationError[S]) Unwrap() error {
	return e.Err
}
