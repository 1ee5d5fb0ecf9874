package vouch

// Phase represents a position in the validate-once, act-once lifecycle.
//
// A state moves through at most three phases: Unvalidated while TryNew runs
// the chain, then either Validated (all filters passed, handle issued) or
// Rejected (terminal, state returned inside the ValidationError). A
// Validated handle moves to Consumed when Execute spends it. No transition
// is re-entrant.
type Phase int32

const (
	// PhaseUnvalidated is the starting phase: the chain has not finished
	// running against the state.
	PhaseUnvalidated Phase = iota

	// PhaseValidated means every filter passed and a handle exclusively
	// owns the state.
	PhaseValidated

	// PhaseConsumed means the handle has been spent by Execute and the
	// state now belongs to the action. Terminal.
	PhaseConsumed

	// PhaseRejected means a filter failed. Terminal; no action can ever
	// run for the state under this attempt.
	PhaseRejected
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUnvalidated:
		return "unvalidated"
	case PhaseValidated:
		return "validated"
	case PhaseConsumed:
		return "consumed"
	case PhaseRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
