package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"lifeatlas.healthmetrics.org/internal/app"
	"lifeatlas.healthmetrics.org/internal/appconf"
	"lifeatlas.healthmetrics.org/internal/dataset"
	"lifeatlas.healthmetrics.org/internal/logging"
	"lifeatlas.healthmetrics.org/internal/restapi"
)

// envOverrides are read after the command line flags and take precedence,
// which keeps container deployments flag-free.
type envOverrides struct {
	Port      int    `env:"LIFEATLAS_PORT"`
	Env       string `env:"LIFEATLAS_ENV"`
	ApiKeys   string `env:"LIFEATLAS_API_KEYS"`
	DataURL   string `env:"LIFEATLAS_DATA_URL"`
	DBPath    string `env:"LIFEATLAS_DB_PATH"`
	RateLimit int    `env:"LIFEATLAS_RATE_LIMIT"`
}

func main() {
	var (
		port        int
		envFlag     string
		apiKeysFlag string
		dataURL     string
		dbPath      string
		rateLimit   int
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma separated API keys")
	flag.StringVar(&dataURL, "data-url", "life_expectancy.csv", "URL or path for the WHO life expectancy CSV")
	flag.StringVar(&dbPath, "db-path", "lifeatlas.db", "SQLite database path")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second allowed per API key (negative disables limiting)")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		logger.Error("failed to parse environment overrides", "error", err)
		os.Exit(1)
	}
	if overrides.Port != 0 {
		port = overrides.Port
	}
	if overrides.Env != "" {
		envFlag = overrides.Env
	}
	if overrides.ApiKeys != "" {
		apiKeysFlag = overrides.ApiKeys
	}
	if overrides.DataURL != "" {
		dataURL = overrides.DataURL
	}
	if overrides.DBPath != "" {
		dbPath = overrides.DBPath
	}
	if overrides.RateLimit != 0 {
		rateLimit = overrides.RateLimit
	}

	var apiKeys []string
	for _, key := range strings.Split(apiKeysFlag, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			apiKeys = append(apiKeys, key)
		}
	}

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(envFlag),
		ApiKeys:   apiKeys,
		RateLimit: rateLimit,
	}

	datasetConfig := dataset.Config{
		DataURL: dataURL,
		DBPath:  dbPath,
		Env:     cfg.Env,
	}

	manager, err := dataset.InitManager(datasetConfig)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:        cfg,
		DatasetConfig: datasetConfig,
		Logger:        logger,
		Manager:       manager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			_ = srv.Close()
		}
	}

	manager.Shutdown()
	logger.Info("stopped")
}
