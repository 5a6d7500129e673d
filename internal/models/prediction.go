package models

import (
	"time"

	"ontime.transitdata.org/internal/estimation"
)

// Prediction is the JSON shape of one arrival-time estimate.
type Prediction struct {
	TripID                     string  `json:"tripId"`
	StopID                     string  `json:"stopId"`
	PredictedTravelTimeSeconds float64 `json:"predictedTravelTimeSeconds"`
	ConfidenceIntervalSeconds  float64 `json:"confidenceIntervalSeconds"`
	PredictedArrival           string  `json:"predictedArrival"`
	LowerBound                 string  `json:"lowerBound"`
	UpperBound                 string  `json:"upperBound"`
}

// NewPrediction converts an estimation result to its wire form.
func NewPrediction(p *estimation.Prediction) Prediction {
	return Prediction{
		TripID:                     p.TripID,
		StopID:                     p.BusStop,
		PredictedTravelTimeSeconds: p.TravelTime,
		ConfidenceIntervalSeconds:  p.ConfidenceInterval,
		PredictedArrival:           p.PredictedArrival.Format(time.RFC3339),
		LowerBound:                 p.LowerBound.Format(time.RFC3339),
		UpperBound:                 p.UpperBound.Format(time.RFC3339),
	}
}
