package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"ontime.transitdata.org/internal/app"
	"ontime.transitdata.org/internal/metrics"
)

// RestAPI exposes the estimator's read-only operations over HTTP.
type RestAPI struct {
	*app.Application
	Metrics *metrics.Collector
}

// NewRestAPI creates a RestAPI over a loaded application.
func NewRestAPI(application *app.Application, collector *metrics.Collector) *RestAPI {
	return &RestAPI{
		Application: application,
		Metrics:     collector,
	}
}

// Routes builds the router for serve mode.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/v1/predict", api.predictHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/trips", api.tripsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/trips/:id", api.tripDetailHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/stops", api.stopsHandler)

	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())
	}

	return api.requestLogging(router)
}
