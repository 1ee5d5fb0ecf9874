package vouch

import (
	"context"
	"sync/atomic"

	"github.com/zoobzio/capitan"
)

// Validated exclusively owns a state that has passed every filter in its
// chain. It is produced only by TryNew and consumed only by Execute.
//
// The handle is the single live owner of the state. There is no accessor for
// the embedded value: the only way to reach a validated state is to spend
// the handle on an action. A handle can be spent once; Execute marks it
// consumed atomically and a second Execute panics.
type Validated[S any] struct {
	state    S
	cfg      settings
	consumed atomic.Bool
}

// Phase reports whether the handle is still spendable. A freshly issued
// handle is in PhaseValidated; after Execute it is in PhaseConsumed.
func (v *Validated[S]) Phase() Phase {
	if v.consumed.Load() {
		return PhaseConsumed
	}
	return PhaseValidated
}

// TryNew takes ownership of state and runs the chain against it in declared
// order.
//
// If every filter passes, TryNew returns a Validated handle that exclusively
// owns the state. The caller must treat its own copy of the state as moved:
// the handle is now the single owner, and constructing a second validator
// from a retained copy forfeits the act-once guarantee for that value.
//
// If a filter fails, TryNew returns a *ValidationError[S] identifying the
// first failing filter. Filters after the first failure are never invoked.
// Ownership of the rejected state is handed back inside the error so the
// caller can repair it and try again; no handle exists for a rejected state.
//
// An empty chain is rejected with ErrEmptyChain.
func TryNew[S any](ctx context.Context, state S, chain Chain[S], opts ...Option) (*Validated[S], error) {
	cfg := newSettings(opts)

	if chain.Len() == 0 {
		return nil, ErrEmptyChain
	}

	start := cfg.clock.Now()
	if i, err := chain.evaluate(ctx, state); err != nil {
		elapsed := cfg.clock.Since(start)
		capitan.Emit(ctx, ValidationRejected,
			KeyPipeline.Field(cfg.name),
			KeyFilterIndex.Field(i),
			KeyFilterName.Field(chain.name(i)),
			KeyError.Field(err.Error()),
			KeyDuration.Field(elapsed),
		)
		if cfg.metrics != nil {
			cfg.metrics.OnPhaseChange(PhaseUnvalidated, PhaseRejected)
			cfg.metrics.OnValidationFailure(cfg.name, i, elapsed)
		}
		return nil, &ValidationError[S]{State: state, Index: i, Name: chain.name(i), Err: err}
	}
	elapsed := cfg.clock.Since(start)

	capitan.Emit(ctx, ValidationPassed,
		KeyPipeline.Field(cfg.name),
		KeyFilterCount.Field(chain.Len()),
		KeyDuration.Field(elapsed),
	)
	if cfg.metrics != nil {
		cfg.metrics.OnPhaseChange(PhaseUnvalidated, PhaseValidated)
		cfg.metrics.OnValidationSuccess(cfg.name, elapsed)
	}

	return &Validated[S]{state: state, cfg: cfg}, nil
}

// Execute spends the handle on the action, exactly once.
//
// The action receives exclusive ownership of the validated state and may
// mutate or destroy it. Execute returns whatever the action produces; the
// meaning of the action's error is entirely the action's concern, and the
// handle is consumed whether or not the action succeeds.
//
// Execute panics if the handle has already been consumed. Go has no move
// semantics to make the second call unrepresentable, so the handle
// invalidates itself on transfer and fails fast on reuse.
func Execute[S, R any](ctx context.Context, handle *Validated[S], action Action[S, R]) (R, error) {
	if !handle.consumed.CompareAndSwap(false, true) {
		panic("vouch: Execute called on a consumed handle")
	}

	cfg := handle.cfg
	state := handle.state

	// Release the handle's copy; the action is the sole owner now.
	var zero S
	handle.state = zero

	if cfg.metrics != nil {
		cfg.metrics.OnPhaseChange(PhaseValidated, PhaseConsumed)
	}

	start := cfg.clock.Now()
	result, err := action.Apply(ctx, state)
	elapsed := cfg.clock.Since(start)

	if err != nil {
		capitan.Emit(ctx, ActionFailed,
			KeyPipeline.Field(cfg.name),
			KeyError.Field(err.Error()),
			KeyDuration.Field(elapsed),
		)
		if cfg.metrics != nil {
			cfg.metrics.OnActionFailure(cfg.name, elapsed)
		}
		return result, err
	}

	capitan.Emit(ctx, ActionExecuted,
		KeyPipeline.Field(cfg.name),
		KeyDuration.Field(elapsed),
	)
	if cfg.metrics != nil {
		cfg.metrics.OnActionSuccess(cfg.name, elapsed)
	}
	return result, nil
}
