package vouch

import (
	"testing"

	"github.com/zoobzio/clockz"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := newSettings(nil)

	if s.name != "" {
		t.Errorf("expected empty default name, got %q", s.name)
	}
	if s.metrics != nil {
		t.Error("expected no default metrics provider")
	}
	if s.clock != clockz.RealClock {
		t.Error("expected the real clock by default")
	}
}

func TestWithName(t *testing.T) {
	s := newSettings([]Option{WithName("transfer")})
	if s.name != "transfer" {
		t.Errorf("expected 'transfer', got %q", s.name)
	}
}

func TestWithMetrics(t *testing.T) {
	provider := &recordingMetrics{}
	s := newSettings([]Option{WithMetrics(provider)})
	if s.metrics != MetricsProvider(provider) {
		t.Error("expected the provided metrics provider")
	}
}

func TestWithClock(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := newSettings([]Option{WithClock(clock)})
	if s.clock != clockz.Clock(clock) {
		t.Error("expected the provided clock")
	}
}
