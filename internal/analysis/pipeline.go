package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"lifeatlas.healthmetrics.org/internal/appconf"
	"lifeatlas.healthmetrics.org/internal/dataset"
	"lifeatlas.healthmetrics.org/internal/logging"
	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/report"
	"lifeatlas.healthmetrics.org/internal/simgraph"
	"lifeatlas.healthmetrics.org/internal/stats"
	"lifeatlas.healthmetrics.org/lifedb"
)

// Pipeline runs the full batch analysis over one dataset snapshot.
type Pipeline struct {
	config Config
	env    appconf.Environment
	logger *slog.Logger
}

// Result summarizes a completed pipeline run.
type Result struct {
	Observations int
	Countries    int
	ChartFiles   []string
	EdgeListFile string
	SummaryFile  string
	RunID        int64
	Rankings     []models.YearRanking
	Clusters     models.ClusterData
}

// NewPipeline validates the configuration and returns a runnable pipeline.
func NewPipeline(config Config, env appconf.Environment, logger *slog.Logger) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{config: config, env: env, logger: logger}, nil
}

// Run executes every stage in order: load, describe, chart, graph, cluster,
// persist, report. It stops at the first failing stage.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	manager, err := p.loadDataset()
	if err != nil {
		return nil, err
	}
	defer manager.Shutdown()

	observations := manager.Observations()
	result := &Result{
		Observations: len(observations),
		Countries:    len(manager.Countries()),
	}

	p.describe(observations, result)

	if result.ChartFiles, err = p.renderCharts(observations); err != nil {
		return nil, err
	}

	graph, err := p.buildGraph(manager)
	if err != nil {
		return nil, err
	}
	result.Clusters = graph.ClusterData(p.config.Graph.Threshold, p.config.Graph.Features)

	gen, err := report.NewGenerator(p.config.OutputDir)
	if err != nil {
		return nil, err
	}
	if result.EdgeListFile, err = p.exportEdgeList(graph, gen); err != nil {
		return nil, err
	}
	if result.RunID, err = p.persistRun(ctx, manager, graph); err != nil {
		return nil, err
	}
	if result.SummaryFile, err = p.writeSummary(result.Clusters, gen); err != nil {
		return nil, err
	}

	logging.LogOperation(p.logger, "pipeline_complete",
		slog.Int("observations", result.Observations),
		slog.Int("countries", result.Countries),
		slog.Int("clusters", len(result.Clusters.Clusters)),
		slog.Int64("run_id", result.RunID))

	return result, nil
}

func (p *Pipeline) loadDataset() (*dataset.Manager, error) {
	start := time.Now()

	imputation := p.config.Imputation
	manager, err := dataset.InitManager(dataset.Config{
		DataURL:    p.config.Dataset,
		DBPath:     p.config.Database,
		Env:        p.env,
		Imputation: &imputation,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	logging.LogOperation(p.logger, "dataset_loaded",
		slog.String("source", manager.Source()),
		slog.Int("observations", len(manager.Observations())),
		slog.Duration("duration", time.Since(start)))

	return manager, nil
}

// describe logs the descriptive statistics the original run printed: life
// expectancy and GDP summaries, per-year rankings and status averages.
func (p *Pipeline) describe(observations []models.Observation, result *Result) {
	start := time.Now()

	for _, indicator := range []string{"life-expectancy", "gdp"} {
		summary, err := stats.Summary(observations, indicator)
		if err != nil {
			logging.LogError(p.logger, "indicator summary unavailable", err,
				slog.String("indicator", indicator))
			continue
		}
		logging.LogOperation(p.logger, "indicator_summary",
			slog.String("indicator", indicator),
			slog.Float64("mean", summary.Mean),
			slog.Float64("median", summary.Median),
			slog.Float64("std_dev", summary.StdDev),
			slog.Float64("variance", summary.Variance))
	}

	result.Rankings = stats.TopCountriesByYear(observations, p.config.TopN)
	for _, ranking := range result.Rankings {
		names := make([]string, len(ranking.Countries))
		for i, c := range ranking.Countries {
			names[i] = fmt.Sprintf("%s (%.2f)", c.Country, c.LifeExpectancy)
		}
		logging.LogOperation(p.logger, "top_countries",
			slog.Int("year", ranking.Year),
			slog.String("countries", strings.Join(names, ", ")))
	}

	for _, average := range stats.AveragesByStatus(observations) {
		logging.LogOperation(p.logger, "status_average",
			slog.String("status", average.Status),
			slog.Float64("life_expectancy", average.Average),
			slog.Int("observations", average.Count))
	}

	logging.LogOperation(p.logger, "stage_complete",
		slog.String("stage", "describe"),
		slog.Duration("duration", time.Since(start)))
}

func (p *Pipeline) renderCharts(observations []models.Observation) ([]string, error) {
	start := time.Now()

	gen, err := report.NewGenerator(p.config.OutputDir)
	if err != nil {
		return nil, err
	}
	files, err := gen.RenderAll(observations)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(p.logger, "stage_complete",
		slog.String("stage", "charts"),
		slog.Int("files", len(files)),
		slog.Duration("duration", time.Since(start)))

	return files, nil
}

func (p *Pipeline) buildGraph(manager *dataset.Manager) (*simgraph.Graph, error) {
	start := time.Now()

	labels, rows := manager.FeatureMatrix(p.config.Graph.Features)
	graph, err := simgraph.Build(labels, rows, p.config.Graph.Threshold)
	if err != nil {
		return nil, fmt.Errorf("error building similarity graph: %w", err)
	}

	logging.LogOperation(p.logger, "stage_complete",
		slog.String("stage", "graph"),
		slog.Int("nodes", graph.NodeCount()),
		slog.Int("edges", graph.EdgeCount()),
		slog.Duration("duration", time.Since(start)))

	return graph, nil
}

func (p *Pipeline) exportEdgeList(graph *simgraph.Graph, gen *report.Generator) (string, error) {
	path := gen.Path(report.EdgeListFile)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating edge list file: %w", err)
	}
	if err := graph.ExportEdgeList(f); err != nil {
		f.Close() // nolint:errcheck
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error closing edge list file: %w", err)
	}

	return path, nil
}

func (p *Pipeline) persistRun(ctx context.Context, manager *dataset.Manager, graph *simgraph.Graph) (int64, error) {
	start := time.Now()

	runID, err := manager.DB.Queries.InsertClusterRun(ctx,
		p.config.Graph.Threshold, strings.Join(p.config.Graph.Features, ","))
	if err != nil {
		return 0, fmt.Errorf("error recording cluster run: %w", err)
	}

	memberships := graph.Memberships()
	members := make([]lifedb.ClusterMember, len(memberships))
	for i, m := range memberships {
		members[i] = lifedb.ClusterMember{
			RunID:          runID,
			ClusterID:      int64(m.ClusterID),
			Country:        m.Label.Country,
			Year:           int64(m.Label.Year),
			Representative: m.Representative,
		}
	}
	if err := lifedb.InsertClusterMemberBatch(manager.DB.DB, members); err != nil {
		return 0, fmt.Errorf("error persisting cluster members: %w", err)
	}

	modelEdges := graph.Edges()
	edges := make([]lifedb.GraphEdge, len(modelEdges))
	for i, e := range modelEdges {
		edges[i] = lifedb.GraphEdge{
			RunID:  runID,
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
		}
	}
	if err := lifedb.InsertGraphEdgeBatch(manager.DB.DB, edges); err != nil {
		return 0, fmt.Errorf("error persisting graph edges: %w", err)
	}

	logging.LogOperation(p.logger, "stage_complete",
		slog.String("stage", "persist"),
		slog.Int64("run_id", runID),
		slog.Int("members", len(members)),
		slog.Int("edges", len(edges)),
		slog.Duration("duration", time.Since(start)))

	return runID, nil
}

func (p *Pipeline) writeSummary(clusters models.ClusterData, gen *report.Generator) (string, error) {
	path := gen.Path(report.ClusterSummaryFile)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating cluster summary file: %w", err)
	}
	if err := report.WriteClusterSummary(f, clusters); err != nil {
		f.Close() // nolint:errcheck
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error closing cluster summary file: %w", err)
	}

	return path, nil
}
