package vouch

import "github.com/zoobzio/clockz"

// settings carries the ambient configuration for one validation attempt or
// one Pipeline. The zero configuration is usable: unnamed, no metrics, real
// clock.
type settings struct {
	name    string
	metrics MetricsProvider
	clock   clockz.Clock
}

func newSettings(opts []Option) settings {
	s := settings{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a validation attempt. Options are accepted by TryNew and
// NewPipeline; the handle issued by TryNew carries them through to Execute.
type Option func(*settings)

// WithName labels the pipeline for signals and metrics. Without a name,
// events are emitted with an empty pipeline field.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithMetrics installs a metrics provider that receives callbacks on phase
// changes and validation/action outcomes.
func WithMetrics(provider MetricsProvider) Option {
	return func(s *settings) {
		s.metrics = provider
	}
}

// WithClock sets a custom clock for duration measurement.
// Use clockz.NewFakeClock() for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}
