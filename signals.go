package vouch

import "github.com/zoobzio/capitan"

// Validation signals.
var (
	// ValidationPassed is emitted when every filter in a chain passed and
	// a Validated handle was issued.
	ValidationPassed = capitan.NewSignal(
		"vouch.validation.passed",
		"All filters passed, handle issued",
	)

	// ValidationRejected is emitted when a filter rejected the state.
	ValidationRejected = capitan.NewSignal(
		"vouch.validation.rejected",
		"Filter rejected state",
	)
)

// Action signals.
var (
	// ActionExecuted is emitted when an action consumed a validated state
	// and returned without error.
	ActionExecuted = capitan.NewSignal(
		"vouch.action.executed",
		"Action consumed validated state",
	)

	// ActionFailed is emitted when an action returned an error. The handle
	// is consumed regardless.
	ActionFailed = capitan.NewSignal(
		"vouch.action.failed",
		"Action returned an error",
	)
)
