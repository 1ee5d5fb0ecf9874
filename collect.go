package vouch

import "context"

// Bulk admission helpers. These evaluate a chain against many candidate
// states without issuing handles: they only observe, so no ownership moves
// and no action can be attached to the results. Use TryNew on an individual
// state when it is time to act on it.

// FitsAll reports whether every candidate passes the chain.
// Evaluation stops at the first candidate that fails.
func FitsAll[S any](ctx context.Context, chain Chain[S], candidates []S) bool {
	for _, s := range candidates {
		if _, err := chain.evaluate(ctx, s); err != nil {
			return false
		}
	}
	return true
}

// FitsAny reports whether at least one candidate passes the chain.
// Evaluation stops at the first candidate that passes.
func FitsAny[S any](ctx context.Context, chain Chain[S], candidates []S) bool {
	for _, s := range candidates {
		if _, err := chain.evaluate(ctx, s); err == nil {
			return true
		}
	}
	return false
}

// Fitting returns the candidates that pass the chain, in input order.
// Candidates are never mutated; the result shares no backing array with the
// input.
func Fitting[S any](ctx context.Context, chain Chain[S], candidates []S) []S {
	var out []S
	for _, s := range candidates {
		if _, err := chain.evaluate(ctx, s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
