package restapi

import (
	"errors"
	"net/http"
	"time"

	"ontime.transitdata.org/internal/estimation"
	"ontime.transitdata.org/internal/logging"
	"ontime.transitdata.org/internal/models"
	"ontime.transitdata.org/internal/utils"
)

func (api *RestAPI) predictHandler(w http.ResponseWriter, r *http.Request) {
	tripID := r.URL.Query().Get("tripId")
	stopID := r.URL.Query().Get("stopId")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateTripID(tripID); err != nil {
		fieldErrors["tripId"] = append(fieldErrors["tripId"], err.Error())
	}
	if err := utils.ValidateStopName(stopID); err != nil {
		fieldErrors["stopId"] = append(fieldErrors["stopId"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	start := time.Now()
	prediction, err := api.Estimator.Predict(tripID, stopID)
	if api.Metrics != nil {
		api.Metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		api.predictionFailureResponse(w, r, err)
		return
	}

	if api.Metrics != nil {
		api.Metrics.Predictions.Inc()
	}
	api.sendResponse(w, r, models.NewOKResponse(models.NewPrediction(prediction)))
}

// predictionFailureResponse maps the estimator's failure classifications to
// HTTP statuses: missing entities and profiles are 404, requests the data
// cannot support are 422, anything unexpected is 500.
func (api *RestAPI) predictionFailureResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Debug("prediction rejected",
		"error", err.Error(), "path", r.URL.Path)

	var (
		unknownTrip  *estimation.UnknownTripIDError
		unknownStop  *estimation.UnknownStopError
		noData       *estimation.NoHistoricalDataError
		insufficient *estimation.InsufficientDataError
		invalid      *estimation.InvalidPredictionError
	)

	switch {
	case errors.As(err, &unknownTrip):
		api.countFailure("unknown_trip")
		api.notFoundResponse(w, r, err.Error())
	case errors.As(err, &unknownStop):
		api.countFailure("unknown_stop")
		api.notFoundResponse(w, r, err.Error())
	case errors.As(err, &noData):
		api.countFailure("no_historical_data")
		api.notFoundResponse(w, r, err.Error())
	case errors.As(err, &insufficient):
		api.countFailure("insufficient_data")
		api.unprocessableResponse(w, r, err.Error())
	case errors.As(err, &invalid):
		api.countFailure("invalid_prediction")
		api.unprocessableResponse(w, r, err.Error())
	default:
		api.countFailure("internal")
		api.serverErrorResponse(w, r, err)
	}
}

func (api *RestAPI) countFailure(reason string) {
	if api.Metrics != nil {
		api.Metrics.PredictionFailures.WithLabelValues(reason).Inc()
	}
}
