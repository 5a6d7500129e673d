package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ontime.transitdata.org/internal/app"
	"ontime.transitdata.org/internal/estimation"
	"ontime.transitdata.org/internal/history"
	"ontime.transitdata.org/internal/logging"
	"ontime.transitdata.org/internal/metrics"
	"ontime.transitdata.org/internal/report"
	"ontime.transitdata.org/internal/restapi"
)

func main() {
	defaults := app.LoadEnvDefaults()

	var cfg app.Config
	flag.StringVar(&cfg.Trip, "trip", "", "Trip ID to predict")
	flag.StringVar(&cfg.Stop, "stop", "", "Stop to predict arrival at")
	flag.StringVar(&cfg.OutputPath, "output", "", "Path to save results (optional)")
	flag.BoolVar(&cfg.ListTrips, "list-trips", false, "List all trips with first/last stop and date")
	flag.BoolVar(&cfg.ListStops, "list-stops", false, "List all stops with visit counts")
	flag.StringVar(&cfg.TripDetail, "trip-detail", "", "Show the stops visited by one trip")
	flag.BoolVar(&cfg.Debug, "debug", false, "Show debug information")
	flag.BoolVar(&cfg.Serve, "serve", false, "Serve predictions over HTTP instead of running once")
	flag.IntVar(&cfg.Port, "port", defaults.Port, "HTTP server port for serve mode")
	flag.StringVar(&cfg.Env, "env", defaults.Env, "Environment (development|staging|production)")
	flag.TextVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Minimum log level (debug|info|warn|error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <dataset.csv>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	cfg.DatasetPath = flag.Arg(0)

	var logger *slog.Logger
	if cfg.Serve {
		logger = logging.NewStructuredLogger(os.Stdout, cfg.LogLevel)
	} else {
		logger = logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	}

	fmt.Printf("Loading data from: %s\n", cfg.DatasetPath)
	start := time.Now()
	data, err := history.Load(cfg.DatasetPath)
	if err != nil {
		logging.LogError(logger, "failed to load data", err, slog.String("path", cfg.DatasetPath))
		os.Exit(1)
	}
	logging.LogOperation(logger, "dataset_loaded",
		slog.String("path", cfg.DatasetPath),
		slog.Int("records", data.Len()),
		slog.Duration("duration", time.Since(start)))

	application := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Data:      data,
		Estimator: estimation.NewEstimator(data),
	}

	fmt.Println()
	report.Overview(os.Stdout, data)
	if cfg.Debug {
		fmt.Println()
		report.Debug(os.Stdout, data)
	}

	os.Exit(run(application))
}

func run(application *app.Application) int {
	cfg := application.Config

	switch {
	case cfg.Serve:
		return serveCommand(application)
	case cfg.ListTrips:
		fmt.Println()
		report.TripList(os.Stdout, application.Data)
		return 0
	case cfg.ListStops:
		fmt.Println()
		report.StopList(os.Stdout, application.Data)
		return 0
	case cfg.TripDetail != "":
		fmt.Println()
		if !report.TripDetail(os.Stdout, application.Data, cfg.TripDetail) {
			fmt.Printf("Trip ID %q not found in dataset\n", cfg.TripDetail)
		}
		return 0
	case cfg.Trip != "" && cfg.Stop != "":
		return predictCommand(application)
	default:
		return profilesCommand(application)
	}
}

// predictCommand runs one prediction. Classification failures are reported
// to the user with corrective context and are not process failures.
func predictCommand(application *app.Application) int {
	cfg := application.Config

	prediction, err := application.Estimator.Predict(cfg.Trip, cfg.Stop)
	if err != nil {
		fmt.Printf("\nError: %s\n", err)
		return 0
	}

	results := "\n" + report.Prediction(prediction)
	fmt.Print(results)

	if cfg.OutputPath != "" {
		if err := writeResults(application, results); err != nil {
			logging.LogError(application.Logger, "failed to save results", err,
				slog.String("path", cfg.OutputPath))
			return 1
		}
		fmt.Printf("\nResults saved to: %s\n", cfg.OutputPath)
	}
	return 0
}

// profilesCommand computes the full profile table and optionally persists it.
func profilesCommand(application *app.Application) int {
	profiles := application.Estimator.Profiles()
	fmt.Println("\nGenerated estimates for all stops and directions")

	if application.Config.OutputPath != "" {
		if err := writeResults(application, report.ProfileTable(profiles)); err != nil {
			logging.LogError(application.Logger, "failed to save results", err,
				slog.String("path", application.Config.OutputPath))
			return 1
		}
		fmt.Printf("\nResults saved to: %s\n", application.Config.OutputPath)
	}
	return 0
}

// writeResults writes content to the configured output path. The file handle
// is the only scoped resource in the program; it is released immediately.
func writeResults(application *app.Application, content string) (err error) {
	f, createErr := os.Create(application.Config.OutputPath)
	if createErr != nil {
		return createErr
	}
	defer logging.HandleDeferredError(&err, f.Close, application.Logger, "close results file")

	_, err = f.WriteString(content)
	return err
}

func serveCommand(application *app.Application) int {
	collector := metrics.NewCollector(
		application.Data.Len(),
		len(application.Data.TripIDs()),
		len(application.Data.StopNames()),
	)
	api := restapi.NewRestAPI(application, collector)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	application.Logger.Info("starting server",
		"addr", srv.Addr,
		"env", application.Config.Env,
		"records", application.Data.Len())

	err := srv.ListenAndServe()
	application.Logger.Error(err.Error())
	return 1
}
