package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"lifeatlas.healthmetrics.org/internal/analysis"
	"lifeatlas.healthmetrics.org/internal/appconf"
	"lifeatlas.healthmetrics.org/internal/logging"
)

// envOverrides take precedence over the command line flags.
type envOverrides struct {
	ConfigPath string `env:"LIFEATLAS_CONFIG"`
	Env        string `env:"LIFEATLAS_ENV"`
	Dataset    string `env:"LIFEATLAS_DATA_URL"`
	OutputDir  string `env:"LIFEATLAS_OUTPUT_DIR"`
}

func main() {
	var (
		configPath string
		envFlag    string
		dataset    string
		outputDir  string
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML pipeline configuration file")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&dataset, "dataset", "", "Override for the CSV source (URL or path)")
	flag.StringVar(&outputDir, "output-dir", "", "Override for the chart output directory")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		logger.Error("failed to parse environment overrides", "error", err)
		os.Exit(1)
	}
	if overrides.ConfigPath != "" {
		configPath = overrides.ConfigPath
	}
	if overrides.Env != "" {
		envFlag = overrides.Env
	}
	if overrides.Dataset != "" {
		dataset = overrides.Dataset
	}
	if overrides.OutputDir != "" {
		outputDir = overrides.OutputDir
	}

	config := analysis.DefaultConfig()
	if configPath != "" {
		loaded, err := analysis.LoadConfig(configPath)
		if err != nil {
			logger.Error("failed to load configuration", "error", err, "path", configPath)
			os.Exit(1)
		}
		config = loaded
	}
	if dataset != "" {
		config.Dataset = dataset
	}
	if outputDir != "" {
		config.OutputDir = outputDir
	}

	pipeline, err := analysis.NewPipeline(config, appconf.EnvFlagToEnvironment(envFlag), logger)
	if err != nil {
		logger.Error("invalid pipeline configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	logger.Info("analysis complete",
		"observations", result.Observations,
		"countries", result.Countries,
		"charts", len(result.ChartFiles),
		"edge_list", result.EdgeListFile,
		"summary", result.SummaryFile,
		"run_id", result.RunID,
		"clusters", len(result.Clusters.Clusters))
}
