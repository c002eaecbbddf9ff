// Package analysis runs the batch pipeline: load and clean the dataset,
// compute the exploratory statistics, render the chart artifacts, build the
// similarity graph and persist the clustering results.
package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lifeatlas.healthmetrics.org/internal/dataset"
	"lifeatlas.healthmetrics.org/internal/models"
)

// GraphConfig holds the similarity graph parameters.
type GraphConfig struct {
	// Features are the indicator slugs turned into feature vectors.
	Features []string `yaml:"features"`
	// Threshold is the minimum cosine similarity for an edge.
	Threshold float64 `yaml:"threshold"`
}

// Config is the pipeline configuration, loaded from YAML.
type Config struct {
	// Dataset is the CSV source: an http(s) URL or a local file path.
	Dataset string `yaml:"dataset"`
	// Database is the SQLite file results are persisted to.
	Database string `yaml:"database"`
	// OutputDir receives the chart and report artifacts.
	OutputDir  string                     `yaml:"output_dir"`
	Imputation dataset.ImputationDefaults `yaml:"imputation"`
	Graph      GraphConfig                `yaml:"graph"`
	// TopN is how many countries each per-year ranking keeps.
	TopN int `yaml:"top_n"`
}

// DefaultConfig returns the configuration the original analysis ran with,
// minus the dataset source which must always be supplied.
func DefaultConfig() Config {
	return Config{
		Database:   "lifeatlas.db",
		OutputDir:  "output",
		Imputation: dataset.StandardImputation(),
		Graph: GraphConfig{
			Features:  []string{"life-expectancy", "gdp", "population"},
			Threshold: 0.8,
		},
		TopN: 5,
	}
}

// LoadConfig reads a YAML pipeline configuration, applying defaults for
// anything the file leaves out.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset source is required")
	}
	if c.Database == "" {
		return fmt.Errorf("database path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Graph.Threshold < 0 || c.Graph.Threshold > 1 {
		return fmt.Errorf("graph threshold must be between 0 and 1, got %v", c.Graph.Threshold)
	}
	if len(c.Graph.Features) == 0 {
		return fmt.Errorf("at least one graph feature is required")
	}
	for _, feature := range c.Graph.Features {
		if !models.IsIndicator(feature) {
			return fmt.Errorf("unknown graph feature %q", feature)
		}
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	return nil
}
