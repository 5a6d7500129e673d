package estimation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ontime.transitdata.org/internal/history"
)

// visitAt builds a StopVisit on 2024-03-04 (a Monday) with the given
// clock-time strings.
func visitAt(trip, stop, direction, arrival, departure string, dwell float64) history.StopVisit {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	return history.StopVisit{
		TripID:        trip,
		BusStop:       stop,
		Direction:     direction,
		Date:          day,
		ArrivalTime:   clockOn(day, arrival),
		DepartureTime: clockOn(day, departure),
		DwellTime:     history.Secs(dwell),
	}
}

func clockOn(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		panic(err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location())
}

func TestDeriveSegmentsPairsConsecutiveVisits(t *testing.T) {
	visits := []history.StopVisit{
		visitAt("T1", "A", "N", "08:00:00", "08:00:30", 30),
		visitAt("T1", "B", "N", "08:05:30", "08:06:00", 30),
		visitAt("T1", "C", "N", "08:11:00", "08:11:30", 30),
	}

	segments := DeriveSegments(visits)
	require.Len(t, segments, 3)

	assert.Equal(t, "A", segments[0].BusStop)
	require.True(t, segments[0].TravelTime.Valid)
	assert.InDelta(t, 300, segments[0].TravelTime.Seconds, 0.001)

	assert.Equal(t, "B", segments[1].BusStop)
	require.True(t, segments[1].TravelTime.Valid)
	assert.InDelta(t, 300, segments[1].TravelTime.Seconds, 0.001)

	// The final visit has no successor, so its travel time is absent.
	assert.Equal(t, "C", segments[2].BusStop)
	assert.False(t, segments[2].TravelTime.Valid)
}

func TestDeriveSegmentsDoesNotPairAcrossTrips(t *testing.T) {
	visits := []history.StopVisit{
		visitAt("T1", "A", "N", "08:00:00", "08:00:30", 30),
		visitAt("T2", "B", "N", "09:00:00", "09:00:30", 30),
	}

	segments := DeriveSegments(visits)
	require.Len(t, segments, 2)
	assert.False(t, segments[0].TravelTime.Valid)
	assert.False(t, segments[1].TravelTime.Valid)
}

func TestDeriveSegmentsSingleVisitTrip(t *testing.T) {
	segments := DeriveSegments([]history.StopVisit{
		visitAt("T1", "A", "N", "08:00:00", "08:00:30", 30),
	})

	require.Len(t, segments, 1)
	assert.False(t, segments[0].TravelTime.Valid)
}

func TestDeriveSegmentsEmptyInput(t *testing.T) {
	assert.Empty(t, DeriveSegments(nil))
}

func TestDeriveSegmentsCarriesOriginAttributes(t *testing.T) {
	visits := []history.StopVisit{
		visitAt("T1", "A", "S", "08:00:00", "08:00:45", 45),
		visitAt("T1", "B", "S", "08:04:45", "08:05:00", 15),
	}

	segments := DeriveSegments(visits)
	require.Len(t, segments, 2)

	first := segments[0]
	assert.Equal(t, "T1", first.TripID)
	assert.Equal(t, "S", first.Direction)
	assert.Equal(t, "A", first.BusStop)
	assert.Equal(t, visits[0].ArrivalTime, first.ArrivalTime)
	assert.Equal(t, visits[0].DepartureTime, first.DepartureTime)
	require.True(t, first.DwellTime.Valid)
	assert.InDelta(t, 45, first.DwellTime.Seconds, 0.001)
	require.True(t, first.TravelTime.Valid)
	assert.InDelta(t, 240, first.TravelTime.Seconds, 0.001)
}
