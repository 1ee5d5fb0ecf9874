// Package playground adapts go-playground/validator into vouch filters.
//
// The adapter lets struct-tag validation take a slot in a filter chain
// alongside hand-written filters:
//
//	v := validator.New(validator.WithRequiredStructEnabled())
//
//	chain := vouch.NewChain(
//	    vouch.Named("tags", playground.New[Account](v)),
//	    vouch.Named("solvent", solventFilter),
//	)
//
// Diagnostics are the validator's own errors (validator.ValidationErrors),
// so callers can unwrap the ValidationError and inspect individual field
// violations.
package playground

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/vouch"
)

// New returns a filter that validates the state's struct tags using v.
// The state type must be a struct or a pointer to one.
func New[S any](v *validator.Validate) vouch.Filter[S] {
	return vouch.FilterFunc[S](func(ctx context.Context, state S) error {
		return v.StructCtx(ctx, state)
	})
}

// Rule returns a filter that validates the whole state value against a
// single tag expression, e.g. "gt=0" or "email". Useful when the state is a
// scalar or a newtype rather than a tagged struct.
func Rule[S any](v *validator.Validate, tag string) vouch.Filter[S] {
	return vouch.FilterFunc[S](func(ctx context.Context, state S) error {
		return v.VarCtx(ctx, state, tag)
	})
}
