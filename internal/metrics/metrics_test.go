package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorExposesMetrics(t *testing.T) {
	c := NewCollector(120, 10, 8)

	c.Predictions.Inc()
	c.PredictionFailures.WithLabelValues("unknown_trip").Inc()
	c.PredictionDuration.Observe(0.002)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Contains(t, body, "ontime_predictions_total 1")
	assert.Contains(t, body, `ontime_prediction_failures_total{reason="unknown_trip"} 1`)
	assert.Contains(t, body, "ontime_dataset_records 120")
	assert.Contains(t, body, "ontime_dataset_trips 10")
	assert.Contains(t, body, "ontime_dataset_stops 8")
}
