package history

import (
	"sort"
	"time"
)

// Dataset is the full, read-only record set. Visits are held sorted by
// (trip, arrival time); every index below is derived once at construction.
type Dataset struct {
	visits []StopVisit

	tripSpans  map[string]span
	stopVisits map[string]int
}

// span marks the half-open range of a trip's visits in the sorted slice.
type span struct {
	start, end int
}

func newDataset(visits []StopVisit) *Dataset {
	ds := &Dataset{
		visits:     visits,
		tripSpans:  make(map[string]span),
		stopVisits: make(map[string]int),
	}

	for i, v := range visits {
		ds.stopVisits[v.BusStop]++

		s, ok := ds.tripSpans[v.TripID]
		if !ok {
			s = span{start: i}
		}
		s.end = i + 1
		ds.tripSpans[v.TripID] = s
	}

	return ds
}

// NewDataset builds a dataset from pre-parsed visits, sorting them by trip
// and arrival time. Exposed for tests and programmatic use; file input goes
// through Load.
func NewDataset(visits []StopVisit) *Dataset {
	sorted := make([]StopVisit, len(visits))
	copy(sorted, visits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TripID != sorted[j].TripID {
			return sorted[i].TripID < sorted[j].TripID
		}
		return sorted[i].ArrivalTime.Before(sorted[j].ArrivalTime)
	})
	return newDataset(sorted)
}

// Visits returns the full ordered record set. Callers must not mutate it.
func (ds *Dataset) Visits() []StopVisit {
	return ds.visits
}

// Len returns the total number of records.
func (ds *Dataset) Len() int {
	return len(ds.visits)
}

// TripVisits returns one trip's visits in arrival order, or nil when the trip
// is not present.
func (ds *Dataset) TripVisits(tripID string) []StopVisit {
	s, ok := ds.tripSpans[tripID]
	if !ok {
		return nil
	}
	return ds.visits[s.start:s.end]
}

// HasTrip reports whether any record belongs to the given trip.
func (ds *Dataset) HasTrip(tripID string) bool {
	_, ok := ds.tripSpans[tripID]
	return ok
}

// HasStop reports whether the stop appears anywhere in the dataset.
func (ds *Dataset) HasStop(busStop string) bool {
	_, ok := ds.stopVisits[busStop]
	return ok
}

// TripIDs returns all trip identifiers in sorted order.
func (ds *Dataset) TripIDs() []string {
	ids := make([]string, 0, len(ds.tripSpans))
	for id := range ds.tripSpans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StopNames returns all stop names in sorted order.
func (ds *Dataset) StopNames() []string {
	names := make([]string, 0, len(ds.stopVisits))
	for name := range ds.stopVisits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StopVisitCount returns how many records reference the stop.
func (ds *Dataset) StopVisitCount(busStop string) int {
	return ds.stopVisits[busStop]
}

// Directions returns all direction labels in sorted order.
func (ds *Dataset) Directions() []string {
	seen := make(map[string]struct{})
	for _, v := range ds.visits {
		seen[v.Direction] = struct{}{}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// DateRange returns the earliest and latest record dates. Both zero when the
// dataset is empty.
func (ds *Dataset) DateRange() (first, last time.Time) {
	for _, v := range ds.visits {
		if first.IsZero() || v.Date.Before(first) {
			first = v.Date
		}
		if last.IsZero() || v.Date.After(last) {
			last = v.Date
		}
	}
	return first, last
}
