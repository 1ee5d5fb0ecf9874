package vouch

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key lifecycle events.
type MetricsProvider interface {
	// OnPhaseChange is called when a state transitions between lifecycle
	// phases: unvalidated to validated or rejected, validated to consumed.
	OnPhaseChange(from, to Phase)

	// OnValidationSuccess is called when every filter in the chain passed.
	// Duration is the time taken to run the full chain.
	OnValidationSuccess(pipeline string, duration time.Duration)

	// OnValidationFailure is called when a filter rejected the state.
	// Index is the position of the failing filter in declared order;
	// duration covers the filters that actually ran.
	OnValidationFailure(pipeline string, index int, duration time.Duration)

	// OnActionSuccess is called when the action consumed the state and
	// returned without error.
	OnActionSuccess(pipeline string, duration time.Duration)

	// OnActionFailure is called when the action returned an error. The
	// handle is consumed either way.
	OnActionFailure(pipeline string, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnPhaseChange(_, _ Phase)                             {}
func (NoOpMetricsProvider) OnValidationSuccess(_ string, _ time.Duration)        {}
func (NoOpMetricsProvider) OnValidationFailure(_ string, _ int, _ time.Duration) {}
func (NoOpMetricsProvider) OnActionSuccess(_ string, _ time.Duration)            {}
func (NoOpMetricsProvider) OnActionFailure(_ string, _ time.Duration)            {}
