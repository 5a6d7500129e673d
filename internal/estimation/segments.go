package estimation

import (
	"time"

	"ontime.transitdata.org/internal/history"
)

// Segment is the travel leg starting at one stop visit. TravelTime is the gap
// between departing this stop and arriving at the trip's next stop; it is
// absent for the final visit of a trip, which has no successor. Absent or
// negative travel times are excluded from statistics, never treated as errors.
type Segment struct {
	TripID        string
	Direction     string
	BusStop       string
	ArrivalTime   time.Time
	DepartureTime time.Time
	DwellTime     history.NullSeconds
	TravelTime    history.NullSeconds
}

// DeriveSegments pairs each visit with its successor within the same trip and
// emits one segment per visit. The input must be ordered by trip and arrival
// time, which Dataset guarantees.
func DeriveSegments(visits []history.StopVisit) []Segment {
	segments := make([]Segment, 0, len(visits))

	for i, v := range visits {
		seg := Segment{
			TripID:        v.TripID,
			Direction:     v.Direction,
			BusStop:       v.BusStop,
			ArrivalTime:   v.ArrivalTime,
			DepartureTime: v.DepartureTime,
			DwellTime:     v.DwellTime,
		}

		if i+1 < len(visits) && visits[i+1].TripID == v.TripID {
			next := visits[i+1]
			seg.TravelTime = history.Secs(next.ArrivalTime.Sub(v.DepartureTime).Seconds())
		}

		segments = append(segments, seg)
	}

	return segments
}
