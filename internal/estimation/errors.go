package estimation

import (
	"fmt"
	"strings"
)

// sampleLimit caps how many nearby identifiers a failure carries for the
// caller to retry with.
const sampleLimit = 5

// UnknownTripIDError reports a prediction request for a trip absent from the
// dataset. KnownTripIDs carries a sorted sample of valid identifiers.
type UnknownTripIDError struct {
	TripID       string
	KnownTripIDs []string
}

func (e *UnknownTripIDError) Error() string {
	msg := fmt.Sprintf("trip ID %q not found in dataset", e.TripID)
	if len(e.KnownTripIDs) > 0 {
		msg += fmt.Sprintf(" (known trip IDs include: %s)", strings.Join(e.KnownTripIDs, ", "))
	}
	return msg
}

// UnknownStopError reports a prediction request for a stop that appears
// nowhere in the dataset.
type UnknownStopError struct {
	BusStop    string
	KnownStops []string
}

func (e *UnknownStopError) Error() string {
	msg := fmt.Sprintf("stop %q not found in dataset", e.BusStop)
	if len(e.KnownStops) > 0 {
		msg += fmt.Sprintf(" (known stops: %s)", strings.Join(e.KnownStops, ", "))
	}
	return msg
}

// Combination is an available (direction, stop) profile key, reported as
// corrective context with NoHistoricalDataError.
type Combination struct {
	Direction string
	BusStop   string
}

// NoHistoricalDataError reports that no profile exists for the trip's
// direction and the target stop.
type NoHistoricalDataError struct {
	Direction string
	BusStop   string
	Available []Combination
}

func (e *NoHistoricalDataError) Error() string {
	msg := fmt.Sprintf("no historical data for direction %q and stop %q", e.Direction, e.BusStop)
	if len(e.Available) > 0 {
		combos := make([]string, 0, len(e.Available))
		for _, c := range e.Available {
			combos = append(combos, fmt.Sprintf("direction %s, stop %s", c.Direction, c.BusStop))
		}
		msg += fmt.Sprintf(" (available combinations include: %s)", strings.Join(combos, "; "))
	}
	return msg
}

// InsufficientDataError reports that a profile exists for the direction and
// stop but holds too few observations to estimate from.
type InsufficientDataError struct {
	Direction string
	BusStop   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data to make prediction for direction %q and stop %q", e.Direction, e.BusStop)
}

// InvalidPredictionError reports that the factor-adjusted estimate is not a
// usable positive duration.
type InvalidPredictionError struct {
	BusStop string
}

func (e *InvalidPredictionError) Error() string {
	return fmt.Sprintf("cannot make reliable prediction for stop %q due to insufficient data", e.BusStop)
}
