package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ontime.transitdata.org/internal/estimation"
	"ontime.transitdata.org/internal/history"
)

func reportVisit(trip, stop, direction string, hour, minute int, dwell history.NullSeconds) history.StopVisit {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	arrival := time.Date(2024, 3, 4, hour, minute, 0, 0, time.UTC)
	return history.StopVisit{
		TripID:        trip,
		BusStop:       stop,
		Direction:     direction,
		Date:          day,
		ArrivalTime:   arrival,
		DepartureTime: arrival.Add(30 * time.Second),
		DwellTime:     dwell,
	}
}

func reportDataset() *history.Dataset {
	return history.NewDataset([]history.StopVisit{
		reportVisit("T1", "A", "N", 8, 0, history.Secs(30)),
		reportVisit("T1", "B", "N", 8, 5, history.NullSeconds{}),
		reportVisit("T2", "B", "S", 9, 0, history.Secs(45)),
	})
}

func TestOverview(t *testing.T) {
	var b strings.Builder
	Overview(&b, reportDataset())

	out := b.String()
	assert.Contains(t, out, "Total number of records: 3")
	assert.Contains(t, out, "Number of unique trips: 2")
	assert.Contains(t, out, "Number of unique stops: 2")
	assert.Contains(t, out, "Date range: 2024-03-04 to 2024-03-04")
}

func TestPredictionBlock(t *testing.T) {
	ref := time.Date(2024, 3, 4, 8, 25, 30, 0, time.UTC)
	p := &estimation.Prediction{
		TripID:             "T3",
		BusStop:            "B",
		TravelTime:         330,
		ConfidenceInterval: 83.1,
		PredictedArrival:   ref.Add(330 * time.Second),
		LowerBound:         ref.Add(246 * time.Second),
		UpperBound:         ref.Add(413 * time.Second),
	}

	out := Prediction(p)
	assert.Contains(t, out, "Trip ID: T3")
	assert.Contains(t, out, "Stop: B")
	assert.Contains(t, out, "Predicted arrival: 2024-03-04 08:31:00")
	assert.Contains(t, out, "Confidence interval: ±1.4 minutes")
	assert.Contains(t, out, "Time window: 2024-03-04 08:29:36 to 2024-03-04 08:32:23")
}

func TestProfileTableSkipsEmptyProfiles(t *testing.T) {
	profiles := map[estimation.Key]estimation.Profile{
		{Direction: "N", BusStop: "B"}: {
			Direction:      "N",
			BusStop:        "B",
			MeanTravelTime: history.Secs(330),
			StdTravelTime:  history.Secs(42.4),
		},
		{Direction: "N", BusStop: "C"}: {
			Direction: "N",
			BusStop:   "C",
		},
	}

	out := ProfileTable(profiles)
	assert.Contains(t, out, "Direction: N, Stop: B")
	assert.Contains(t, out, "Average travel time: 5.5 minutes")
	assert.Contains(t, out, "Standard deviation: 0.7 minutes")
	assert.NotContains(t, out, "Stop: C")
}

func TestProfileTableUndefinedStd(t *testing.T) {
	profiles := map[estimation.Key]estimation.Profile{
		{Direction: "N", BusStop: "B"}: {
			Direction:      "N",
			BusStop:        "B",
			MeanTravelTime: history.Secs(300),
		},
	}

	out := ProfileTable(profiles)
	assert.Contains(t, out, "Standard deviation: n/a")
}

func TestTripList(t *testing.T) {
	var b strings.Builder
	TripList(&b, reportDataset())

	out := b.String()
	assert.Contains(t, out, "T1: A -> B (2024-03-04)")
	assert.Contains(t, out, "T2: B -> B (2024-03-04)")
}

func TestStopList(t *testing.T) {
	var b strings.Builder
	StopList(&b, reportDataset())

	out := b.String()
	assert.Contains(t, out, "A: 1 visits")
	assert.Contains(t, out, "B: 2 visits")
}

func TestTripDetail(t *testing.T) {
	var b strings.Builder
	ok := TripDetail(&b, reportDataset(), "T1")
	require.True(t, ok)

	out := b.String()
	assert.Contains(t, out, "Trip T1 (direction N, 2024-03-04)")
	assert.Contains(t, out, "08:00:00  A  dwell 30s")
	assert.Contains(t, out, "08:05:00  B  dwell n/a")
}

func TestTripDetailUnknownTrip(t *testing.T) {
	var b strings.Builder
	assert.False(t, TripDetail(&b, reportDataset(), "T9"))
	assert.Empty(t, b.String())
}
