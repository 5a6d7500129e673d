package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the serve-mode instrumentation on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Predictions        prometheus.Counter
	PredictionFailures *prometheus.CounterVec // reason label
	PredictionDuration prometheus.Histogram

	DatasetRecords prometheus.Gauge
	DatasetTrips   prometheus.Gauge
	DatasetStops   prometheus.Gauge
}

// NewCollector builds and registers the collector, seeding the dataset gauges
// with the loaded record set's dimensions.
func NewCollector(records, trips, stops int) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ontime_predictions_total",
			Help: "Total successful arrival predictions served.",
		}),
		PredictionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ontime_prediction_failures_total",
			Help: "Total failed prediction requests by failure reason.",
		}, []string{"reason"}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ontime_prediction_duration_seconds",
			Help:    "Duration of prediction computations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ontime_dataset_records",
			Help: "Number of loaded historical stop records.",
		}),
		DatasetTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ontime_dataset_trips",
			Help: "Number of unique trips in the loaded dataset.",
		}),
		DatasetStops: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ontime_dataset_stops",
			Help: "Number of unique stops in the loaded dataset.",
		}),
	}

	reg.MustRegister(
		c.Predictions, c.PredictionFailures, c.PredictionDuration,
		c.DatasetRecords, c.DatasetTrips, c.DatasetStops,
	)

	c.DatasetRecords.Set(float64(records))
	c.DatasetTrips.Set(float64(trips))
	c.DatasetStops.Set(float64(stops))

	return c
}

// Handler exposes the registry for the /metrics route.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
