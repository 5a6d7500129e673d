package estimation

import (
	"math"
	"time"

	"ontime.transitdata.org/internal/history"
)

// confidenceZ is the z-score for an approximate 95% interval.
const confidenceZ = 1.96

// fallbackBand is the fixed fractional confidence band used when the sample
// standard deviation is undefined.
const fallbackBand = 0.2

// Prediction is the result of one query. It is derived from a single profile
// plus the trip's last known departure time and is not retained between
// queries.
type Prediction struct {
	TripID             string
	BusStop            string
	TravelTime         float64 // seconds
	ConfidenceInterval float64 // seconds, ± around TravelTime
	PredictedArrival   time.Time
	LowerBound         time.Time
	UpperBound         time.Time
}

// Estimator answers arrival-time queries against one loaded dataset. The
// model is a pure function of the dataset: profiles are rebuilt from the full
// record set on every call, so repeated queries are deterministic and nothing
// can go stale.
type Estimator struct {
	data *history.Dataset
}

// NewEstimator creates an Estimator over the given dataset.
func NewEstimator(data *history.Dataset) *Estimator {
	return &Estimator{data: data}
}

// Profiles derives segments from the full record set and aggregates them into
// per-(direction, stop) profiles.
func (e *Estimator) Profiles() map[Key]Profile {
	return BuildProfiles(DeriveSegments(e.data.Visits()))
}

// Predict estimates when the given trip will arrive at the target stop,
// taking the trip's chronologically last visit as the reference point. Every
// failure is a definitive classification of the input; there is no partial
// result and nothing to retry.
func (e *Estimator) Predict(tripID, busStop string) (*Prediction, error) {
	tripVisits := e.data.TripVisits(tripID)
	if len(tripVisits) == 0 {
		return nil, &UnknownTripIDError{
			TripID:       tripID,
			KnownTripIDs: sampleStrings(e.data.TripIDs()),
		}
	}

	if !e.data.HasStop(busStop) {
		return nil, &UnknownStopError{
			BusStop:    busStop,
			KnownStops: e.data.StopNames(),
		}
	}

	last := tripVisits[len(tripVisits)-1]
	direction := last.Direction
	currentTime := last.DepartureTime

	profiles := e.Profiles()

	profile, ok := profiles[Key{Direction: direction, BusStop: busStop}]
	if !ok {
		return nil, &NoHistoricalDataError{
			Direction: direction,
			BusStop:   busStop,
			Available: sampleCombinations(profiles),
		}
	}

	if profile.Empty() {
		return nil, &InsufficientDataError{Direction: direction, BusStop: busStop}
	}

	base := profile.MeanTravelTime.Seconds
	if factor, ok := profile.HourlyFactors[currentTime.Hour()]; ok {
		base *= factor
	}
	if factor, ok := profile.DailyFactors[currentTime.Weekday()]; ok {
		base *= factor
	}

	if math.IsNaN(base) || base <= 0 {
		return nil, &InvalidPredictionError{BusStop: busStop}
	}

	confidence := base * fallbackBand
	if profile.StdTravelTime.Valid {
		confidence = confidenceZ * profile.StdTravelTime.Seconds
	}

	return &Prediction{
		TripID:             tripID,
		BusStop:            busStop,
		TravelTime:         base,
		ConfidenceInterval: confidence,
		PredictedArrival:   addSeconds(currentTime, base),
		LowerBound:         addSeconds(currentTime, base-confidence),
		UpperBound:         addSeconds(currentTime, base+confidence),
	}, nil
}

// addSeconds advances t by a whole number of seconds, truncating the
// fractional part.
func addSeconds(t time.Time, seconds float64) time.Time {
	return t.Add(time.Duration(int64(seconds)) * time.Second)
}

func sampleStrings(values []string) []string {
	if len(values) > sampleLimit {
		return values[:sampleLimit]
	}
	return values
}

func sampleCombinations(profiles map[Key]Profile) []Combination {
	keys := SortedKeys(profiles)
	if len(keys) > sampleLimit {
		keys = keys[:sampleLimit]
	}
	combos := make([]Combination, 0, len(keys))
	for _, key := range keys {
		combos = append(combos, Combination{Direction: key.Direction, BusStop: key.BusStop})
	}
	return combos
}
