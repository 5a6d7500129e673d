package app

import (
	"log/slog"

	"ontime.transitdata.org/internal/estimation"
	"ontime.transitdata.org/internal/history"
)

// Application holds the dependencies shared by the CLI commands and the
// serve-mode HTTP handlers: the resolved Config, a logger, the loaded record
// set and the estimator over it.
type Application struct {
	Config    Config
	Logger    *slog.Logger
	Data      *history.Dataset
	Estimator *estimation.Estimator
}

// Config holds all the configuration settings for one invocation. Flags are
// the source of truth; environment variables (optionally via a .env file)
// provide defaults for the serve-mode settings.
type Config struct {
	DatasetPath string

	// Prediction request; both must be set for a prediction run.
	Trip string
	Stop string

	// Optional path the prediction block or profile table is written to.
	OutputPath string

	// Inspection views.
	ListTrips  bool
	ListStops  bool
	TripDetail string
	Debug      bool

	// Serve mode.
	Serve bool
	Port  int
	Env   string

	// Minimum level the logger emits at.
	LogLevel slog.Level
}
