// Package report renders the analysis artifacts: chart PNGs and the
// plain-text cluster summary. Each chart mirrors one of the exploratory
// outputs the API serves as data.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"lifeatlas.healthmetrics.org/internal/models"
)

// Artifact file names within the output directory.
const (
	HeatmapFile             = "correlation_heatmap.png"
	ScatterFile             = "scatter_plot.png"
	AdultMortalityTrendFile = "developed_vs_developing_plot_adult_mortality.png"
	InfantDeathsTrendFile   = "developed_vs_developing_plot_infant_mortality.png"
	ComparisonBarFile       = "comparison_bar_plot.png"
	HistogramFile           = "double_histogram.png"
	GDPLineFile             = "gdp_per_country_line_plot.png"
	EdgeListFile            = "graph_edge_list.csv"
	ClusterSummaryFile      = "cluster_report.txt"
)

// comparisonIndicators are the immunization and disease indicators compared
// between developed and developing countries in the grouped bar chart.
var comparisonIndicators = []string{
	"measles", "polio", "bmi", "diphtheria", "hepatitis-b", "hiv-aids",
}

// Generator writes chart artifacts into a single output directory.
type Generator struct {
	outputDir string
}

// NewGenerator creates the output directory if needed and returns a Generator
// rooted there.
func NewGenerator(outputDir string) (*Generator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory %s: %w", outputDir, err)
	}
	return &Generator{outputDir: outputDir}, nil
}

// OutputDir returns the directory artifacts are written into.
func (gen *Generator) OutputDir() string {
	return gen.outputDir
}

// Path resolves an artifact file name inside the output directory.
func (gen *Generator) Path(name string) string {
	return filepath.Join(gen.outputDir, name)
}

// RenderAll renders every chart for the dataset snapshot and returns the
// paths of the files written. Rendering stops at the first failure.
func (gen *Generator) RenderAll(observations []models.Observation) ([]string, error) {
	steps := []struct {
		file   string
		render func(path string) error
	}{
		{HeatmapFile, func(path string) error {
			return CorrelationHeatmap(observations, models.IndicatorNames(), path)
		}},
		{ScatterFile, func(path string) error {
			return IncomeSchoolingScatter(observations, path)
		}},
		{AdultMortalityTrendFile, func(path string) error {
			return AdultMortalityTrend(observations, path)
		}},
		{InfantDeathsTrendFile, func(path string) error {
			return InfantDeathsTrend(observations, path)
		}},
		{ComparisonBarFile, func(path string) error {
			return FeatureComparisonBars(observations, comparisonIndicators, path)
		}},
		{HistogramFile, func(path string) error {
			return MortalityHistograms(observations, path)
		}},
		{GDPLineFile, func(path string) error {
			return GDPLinePlot(observations, path)
		}},
	}

	files := make([]string, 0, len(steps))
	for _, step := range steps {
		path := gen.Path(step.file)
		if err := step.render(path); err != nil {
			return files, fmt.Errorf("error rendering %s: %w", step.file, err)
		}
		files = append(files, path)
	}

	return files, nil
}
