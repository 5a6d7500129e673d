package models

import (
	"time"

	"ontime.transitdata.org/internal/history"
)

// TripSummary is the JSON shape of one trip in the trip listing.
type TripSummary struct {
	ID        string `json:"id"`
	FirstStop string `json:"firstStop"`
	LastStop  string `json:"lastStop"`
	Date      string `json:"date"`
	Visits    int    `json:"visits"`
}

// NewTripSummary summarizes one trip's ordered visits.
func NewTripSummary(tripID string, visits []history.StopVisit) TripSummary {
	summary := TripSummary{ID: tripID, Visits: len(visits)}
	if len(visits) == 0 {
		return summary
	}

	summary.FirstStop = visits[0].BusStop
	summary.LastStop = visits[len(visits)-1].BusStop
	summary.Date = visits[0].Date.Format("2006-01-02")
	return summary
}

// StopSummary is the JSON shape of one stop in the stop listing.
type StopSummary struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

// Visit is the JSON shape of one stop visit in the trip detail view.
type Visit struct {
	BusStop          string   `json:"busStop"`
	Direction        string   `json:"direction"`
	ArrivalTime      string   `json:"arrivalTime"`
	DepartureTime    string   `json:"departureTime"`
	DwellTimeSeconds *float64 `json:"dwellTimeSeconds"`
}

// NewVisit converts a historical record to its wire form. Absent dwell times
// become JSON null.
func NewVisit(v history.StopVisit) Visit {
	visit := Visit{
		BusStop:       v.BusStop,
		Direction:     v.Direction,
		ArrivalTime:   v.ArrivalTime.Format(time.RFC3339),
		DepartureTime: v.DepartureTime.Format(time.RFC3339),
	}
	if v.DwellTime.Valid {
		dwell := v.DwellTime.Seconds
		visit.DwellTimeSeconds = &dwell
	}
	return visit
}

// TripDetail is the JSON shape of one trip's full visit history.
type TripDetail struct {
	Entry  TripSummary `json:"entry"`
	Visits []Visit     `json:"visits"`
}

// NewTripDetail builds the trip detail view from one trip's ordered visits.
func NewTripDetail(tripID string, visits []history.StopVisit) TripDetail {
	detail := TripDetail{
		Entry:  NewTripSummary(tripID, visits),
		Visits: make([]Visit, 0, len(visits)),
	}
	for _, v := range visits {
		detail.Visits = append(detail.Visits, NewVisit(v))
	}
	return detail
}
