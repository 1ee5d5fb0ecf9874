package vouch

import "context"

// Filter judges a single state value. A nil return is a pass; a non-nil
// error rejects the state and becomes the diagnostic on the resulting
// ValidationError.
//
// Filters observe the state read-only. They must not retain the state or
// mutate it through any pointers it contains. They may close over
// configuration captured when the filter was built (thresholds, lookup
// tables, a *validator.Validate instance), but must be pure with respect to
// a single validation run.
type Filter[S any] interface {
	Check(ctx context.Context, state S) error
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc[S any] func(ctx context.Context, state S) error

// Check calls f.
func (f FilterFunc[S]) Check(ctx context.Context, state S) error {
	return f(ctx, state)
}

// Named wraps a filter with a stable name. The name appears on
// ValidationError, in emitted signals, and in metrics callbacks. Unnamed
// filters are reported by index only.
func Named[S any](name string, filter Filter[S]) Filter[S] {
	return namedFilter[S]{name: name, filter: filter}
}

type namedFilter[S any] struct {
	name   string
	filter Filter[S]
}

func (n namedFilter[S]) Check(ctx context.Context, state S) error {
	return n.filter.Check(ctx, state)
}

// FilterName returns the name given to Named.
func (n namedFilter[S]) FilterName() string {
	return n.name
}
