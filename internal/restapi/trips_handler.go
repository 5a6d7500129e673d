package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"ontime.transitdata.org/internal/models"
	"ontime.transitdata.org/internal/utils"
)

func (api *RestAPI) tripsHandler(w http.ResponseWriter, r *http.Request) {
	tripIDs := api.Data.TripIDs()

	list := make([]models.TripSummary, 0, len(tripIDs))
	for _, tripID := range tripIDs {
		list = append(list, models.NewTripSummary(tripID, api.Data.TripVisits(tripID)))
	}

	api.sendResponse(w, r, models.NewOKResponse(map[string]interface{}{"list": list}))
}

func (api *RestAPI) tripDetailHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	tripID := params.ByName("id")

	if err := utils.ValidateTripID(tripID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	visits := api.Data.TripVisits(tripID)
	if len(visits) == 0 {
		api.notFoundResponse(w, r, "trip not found")
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(models.NewTripDetail(tripID, visits)))
}

func (api *RestAPI) stopsHandler(w http.ResponseWriter, r *http.Request) {
	stops := api.Data.StopNames()

	list := make([]models.StopSummary, 0, len(stops))
	for _, stop := range stops {
		list = append(list, models.StopSummary{
			Name:   stop,
			Visits: api.Data.StopVisitCount(stop),
		})
	}

	api.sendResponse(w, r, models.NewOKResponse(map[string]interface{}{"list": list}))
}
