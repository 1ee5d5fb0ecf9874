package vouch

import "github.com/zoobzio/capitan"

// Field keys for validation and action events.
var (
	// KeyPipeline is the pipeline name set with WithName.
	KeyPipeline = capitan.NewStringKey("pipeline")

	// KeyFilterIndex is the position of the failing filter in declared order.
	KeyFilterIndex = capitan.NewIntKey("filter_index")

	// KeyFilterName is the failing filter's name, if it was wrapped with Named.
	KeyFilterName = capitan.NewStringKey("filter_name")

	// KeyFilterCount is the number of filters in the chain.
	KeyFilterCount = capitan.NewIntKey("filter_count")

	// KeyError is the error message when validation or an action fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDuration is the time spent running the chain or the action.
	KeyDuration = capitan.NewDurationKey("duration")
)
