package vouch

import (
	"context"
	"sync/atomic"
)

// Pipeline binds a filter chain to an action so the validate-then-act flow
// can be stored, passed around, and run against many independent states.
//
// Each Run validates one state and, on success, spends the resulting handle
// on the bound action, so the act-once guarantee holds per state. The
// pipeline itself is reusable and safe for concurrent Runs: states validated
// through the same pipeline are independent and never share a handle.
type Pipeline[S, R any] struct {
	chain   Chain[S]
	action  Action[S, R]
	opts    []Option
	lastErr atomic.Pointer[error]
	history *errorRing
}

// NewPipeline binds chain and action. Options apply to every Run.
func NewPipeline[S, R any](chain Chain[S], action Action[S, R], opts ...Option) *Pipeline[S, R] {
	return &Pipeline[S, R]{chain: chain, action: action, opts: opts}
}

// ErrorHistorySize sets the number of recent Run errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before the first Run.
func (p *Pipeline[S, R]) ErrorHistorySize(n int) *Pipeline[S, R] {
	p.history = newErrorRing(n)
	return p
}

// Run validates state against the bound chain and, if every filter passes,
// executes the bound action with ownership of the state.
//
// On rejection the returned error is a *ValidationError[S] carrying the
// state back to the caller; the action is not invoked. On action failure the
// action's error is returned as-is. Either way the failure is recorded for
// LastError and ErrorHistory.
func (p *Pipeline[S, R]) Run(ctx context.Context, state S) (R, error) {
	handle, err := TryNew(ctx, state, p.chain, p.opts...)
	if err != nil {
		p.record(err)
		var zero R
		return zero, err
	}

	result, err := Execute(ctx, handle, p.action)
	p.record(err)
	return result, err
}

// LastError returns the error from the most recent Run, or nil if the most
// recent Run succeeded or no Run has happened yet.
func (p *Pipeline[S, R]) LastError() error {
	ptr := p.lastErr.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns the recent Run errors, oldest first.
// Returns nil unless ErrorHistorySize was set.
func (p *Pipeline[S, R]) ErrorHistory() []error {
	return p.history.all()
}

func (p *Pipeline[S, R]) record(err error) {
	if err == nil {
		p.lastErr.Store(nil)
		return
	}
	e := err
	p.lastErr.Store(&e)
	p.history.push(err)
}
