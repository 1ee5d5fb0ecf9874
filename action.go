package vouch

import (
	"context"

	"github.com/zoobzio/pipz"
)

// Action consumes a validated state and produces a result.
//
// Apply receives exclusive ownership of the state and is free to mutate or
// destructively consume it. An action is invoked at most once per validated
// state, and only with a state that passed every filter in its chain. The
// error return is passed through Execute untouched; its meaning belongs to
// the action.
type Action[S, R any] interface {
	Apply(ctx context.Context, state S) (R, error)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc[S, R any] func(ctx context.Context, state S) (R, error)

// Apply calls f.
func (f ActionFunc[S, R]) Apply(ctx context.Context, state S) (R, error) {
	return f(ctx, state)
}

// PipelineAction adapts a pipz pipeline into an Action.
//
// A pipz pipeline has exactly the action contract: it takes ownership of the
// state and returns the transformed state or an error. Wrapping the pipeline
// in pipz connectors gives the action stage retry, backoff, timeout, and
// circuit-breaker behavior without any support from this package:
//
//	action := vouch.PipelineAction(
//	    pipz.NewRetry("persist", persistProcessor, 3),
//	)
func PipelineAction[S any](pipeline pipz.Chainable[S]) Action[S, S] {
	return ActionFunc[S, S](func(ctx context.Context, state S) (S, error) {
		return pipeline.Process(ctx, state)
	})
}
