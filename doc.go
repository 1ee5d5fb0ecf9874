/*
Package vouch provides validate-once, act-once pipelines over single state
values.

A state is run through an ordered chain of read-only filters. Only if every
filter passes does the caller receive a handle that can be consumed by exactly
one action. The handle is the only path to the state after validation, and it
can be spent exactly once, so "validate once, act once" is a property of the
API rather than something the caller has to track.

# Basic Usage

Build a chain of filters and validate a state:

	chain := vouch.NewChain(
	    vouch.Named("positive", vouch.FilterFunc[int](func(_ context.Context, n int) error {
	        if n <= 0 {
	            return errors.New("not positive")
	        }
	        return nil
	    })),
	    vouch.Named("odd", vouch.FilterFunc[int](func(_ context.Context, n int) error {
	        if n%2 == 0 {
	            return errors.New("not odd")
	        }
	        return nil
	    })),
	)

	handle, err := vouch.TryNew(ctx, 5, chain)
	if err != nil {
	    // err is a *vouch.ValidationError[int] naming the first failing
	    // filter and carrying the rejected state back to the caller.
	    return err
	}

	doubled, err := vouch.Execute(ctx, handle, vouch.ActionFunc[int, int](
	    func(_ context.Context, n int) (int, error) {
	        return n * 2, nil
	    },
	))

Chains short-circuit: the first failing filter produces the result and no
later filter runs. Execute consumes the handle; a second Execute on the same
handle panics.

# Reusable Pipelines

Pipeline binds a chain to an action so the full flow can be stored and run
against many independent states:

	withdraw := vouch.NewPipeline(chain, action).ErrorHistorySize(16)

	for _, acct := range accounts {
	    if _, err := withdraw.Run(ctx, acct); err != nil {
	        continue
	    }
	}

# Actions

An action receives exclusive ownership of the validated state and may mutate
or destroy it. Any pipz pipeline can serve as an action via PipelineAction,
which gives the action stage retry, timeout, and circuit-breaker composition:

	action := vouch.PipelineAction(pipz.NewRetry("persist", persist, 3))

# Filters

Filters observe the state read-only and report a diagnostic error on
rejection. For struct-tag validation, pkg/playground adapts a
go-playground/validator instance into a filter.

# Observability

Lifecycle events are emitted as capitan signals, and a MetricsProvider can be
installed with WithMetrics to receive success/failure callbacks with
durations.
*/
package vouch
