package vouch

import "context"

// Chain is an ordered, immutable sequence of filters. Filters run
// left-to-right in declared order and evaluation short-circuits on the first
// failure, so the reported diagnostic is always the first failing filter and
// filters after it are never invoked.
//
// The order and length of a chain are fixed at the call site that builds it;
// there is no runtime mutation.
type Chain[S any] struct {
	filters []Filter[S]
}

// NewChain builds a chain from filters in the given order. The slice is
// copied; later changes to the arguments do not affect the chain.
func NewChain[S any](filters ...Filter[S]) Chain[S] {
	fs := make([]Filter[S], len(filters))
	copy(fs, filters)
	return Chain[S]{filters: fs}
}

// Len returns the number of filters in the chain.
func (c Chain[S]) Len() int {
	return len(c.filters)
}

// evaluate runs the chain against state and returns the index of the first
// failing filter along with its diagnostic, or (-1, nil) if every filter
// passes.
func (c Chain[S]) evaluate(ctx context.Context, state S) (int, error) {
	for i, f := range c.filters {
		if err := f.Check(ctx, state); err != nil {
			return i, err
		}
	}
	return -1, nil
}

// name returns the name of the filter at index i, or "" if it was not
// wrapped with Named.
func (c Chain[S]) name(i int) string {
	if n, ok := c.filters[i].(interface{ FilterName() string }); ok {
		return n.FilterName()
	}
	return ""
}
