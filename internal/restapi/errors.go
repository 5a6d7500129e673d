package restapi

import (
	"encoding/json"
	"net/http"

	"ontime.transitdata.org/internal/logging"
	"ontime.transitdata.org/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("internal server error", "error", err, "path", r.URL.Path)
	api.sendEnvelope(w, r, http.StatusInternalServerError,
		models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}

// notFoundResponse reports a classification failure where the requested
// entity or profile does not exist; text carries the corrective context.
func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendEnvelope(w, r, http.StatusNotFound,
		models.NewErrorResponse(http.StatusNotFound, text))
}

// unprocessableResponse reports a request that is well-formed but cannot be
// estimated from the available data.
func (api *RestAPI) unprocessableResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendEnvelope(w, r, http.StatusUnprocessableEntity,
		models.NewErrorResponse(http.StatusUnprocessableEntity, text))
}

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to encode validation error response", "error", err)
	}
}
