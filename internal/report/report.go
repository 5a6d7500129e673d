// Package report renders datasets, profiles and predictions as plain text.
// It contains no estimation logic; everything here is display.
package report

import (
	"fmt"
	"io"
	"strings"

	"ontime.transitdata.org/internal/estimation"
	"ontime.transitdata.org/internal/history"
)

const (
	timestampFormat = "2006-01-02 15:04:05"
	dateFormat      = "2006-01-02"
	clockFormat     = "15:04:05"
)

// Overview writes the dataset summary printed after every successful load.
func Overview(w io.Writer, ds *history.Dataset) {
	first, last := ds.DateRange()

	fmt.Fprintf(w, "Dataset Overview:\n")
	fmt.Fprintf(w, "Total number of records: %d\n", ds.Len())
	fmt.Fprintf(w, "Number of unique trips: %d\n", len(ds.TripIDs()))
	fmt.Fprintf(w, "Number of unique stops: %d\n", len(ds.StopNames()))
	if !first.IsZero() {
		fmt.Fprintf(w, "Date range: %s to %s\n", first.Format(dateFormat), last.Format(dateFormat))
	}
}

// Debug writes the extra dataset detail shown with the -debug flag.
func Debug(w io.Writer, ds *history.Dataset) {
	fmt.Fprintf(w, "Available directions: %s\n", strings.Join(ds.Directions(), ", "))

	tripIDs := ds.TripIDs()
	if len(tripIDs) > 5 {
		tripIDs = tripIDs[:5]
	}
	fmt.Fprintf(w, "Sample of trip IDs: %s\n", strings.Join(tripIDs, ", "))
	fmt.Fprintf(w, "All stops: %s\n", strings.Join(ds.StopNames(), ", "))
}

// Prediction renders the single-prediction result block.
func Prediction(p *estimation.Prediction) string {
	var b strings.Builder

	b.WriteString("Prediction Results:\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Trip ID: %s\n", p.TripID)
	fmt.Fprintf(&b, "Stop: %s\n", p.BusStop)
	fmt.Fprintf(&b, "Predicted arrival: %s\n", p.PredictedArrival.Format(timestampFormat))
	fmt.Fprintf(&b, "Confidence interval: ±%.1f minutes\n", p.ConfidenceInterval/60)
	fmt.Fprintf(&b, "Time window: %s to %s\n",
		p.LowerBound.Format(timestampFormat), p.UpperBound.Format(timestampFormat))

	return b.String()
}

// ProfileTable renders the full per-(direction, stop) profile listing,
// skipping entries whose mean is undefined.
func ProfileTable(profiles map[estimation.Key]estimation.Profile) string {
	var b strings.Builder

	for _, key := range estimation.SortedKeys(profiles) {
		profile := profiles[key]
		if profile.Empty() {
			continue
		}

		fmt.Fprintf(&b, "Direction: %s, Stop: %s\n", profile.Direction, profile.BusStop)
		fmt.Fprintf(&b, "Average travel time: %.1f minutes\n", profile.MeanTravelTime.Seconds/60)
		if profile.StdTravelTime.Valid {
			fmt.Fprintf(&b, "Standard deviation: %.1f minutes\n", profile.StdTravelTime.Seconds/60)
		} else {
			fmt.Fprintf(&b, "Standard deviation: n/a\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// TripList writes every trip with its first and last stop and service date.
func TripList(w io.Writer, ds *history.Dataset) {
	fmt.Fprintf(w, "Trips:\n")
	for _, tripID := range ds.TripIDs() {
		visits := ds.TripVisits(tripID)
		first := visits[0]
		last := visits[len(visits)-1]
		fmt.Fprintf(w, "  %s: %s -> %s (%s)\n",
			tripID, first.BusStop, last.BusStop, first.Date.Format(dateFormat))
	}
}

// StopList writes every stop with its visit count.
func StopList(w io.Writer, ds *history.Dataset) {
	fmt.Fprintf(w, "Stops:\n")
	for _, stop := range ds.StopNames() {
		fmt.Fprintf(w, "  %s: %d visits\n", stop, ds.StopVisitCount(stop))
	}
}

// TripDetail writes one trip's visits with arrival time and dwell per stop.
// It returns false when the trip is not present.
func TripDetail(w io.Writer, ds *history.Dataset, tripID string) bool {
	visits := ds.TripVisits(tripID)
	if len(visits) == 0 {
		return false
	}

	first := visits[0]
	fmt.Fprintf(w, "Trip %s (direction %s, %s):\n",
		tripID, first.Direction, first.Date.Format(dateFormat))
	for _, v := range visits {
		dwell := "n/a"
		if v.DwellTime.Valid {
			dwell = fmt.Sprintf("%.0fs", v.DwellTime.Seconds)
		}
		fmt.Fprintf(w, "  %s  %s  dwell %s\n",
			v.ArrivalTime.Format(clockFormat), v.BusStop, dwell)
	}
	return true
}
