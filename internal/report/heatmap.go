package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
)

// correlationGrid adapts a correlation matrix to the heat map grid interface.
// Row 0 is drawn at the top so the matrix reads the same as a table.
type correlationGrid struct {
	matrix [][]float64
}

func (grid correlationGrid) Dims() (c, r int) {
	return len(grid.matrix), len(grid.matrix)
}

func (grid correlationGrid) Z(c, r int) float64 {
	return grid.matrix[len(grid.matrix)-1-r][c]
}

func (grid correlationGrid) X(c int) float64 { return float64(c) }
func (grid correlationGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatmap renders the pairwise Pearson correlations of the given
// indicators as a square heat map PNG.
func CorrelationHeatmap(observations []models.Observation, indicators []string, path string) error {
	if len(indicators) == 0 {
		return fmt.Errorf("no indicators to correlate")
	}

	data := stats.Correlations(observations, indicators)

	p := plot.New()
	p.Title.Text = "Feature Correlation Heatmap"
	p.X.Label.Text = "Features"
	p.Y.Label.Text = "Features"

	heatmap := plotter.NewHeatMap(correlationGrid{matrix: data.Matrix}, moreland.SmoothBlueRed().Palette(255))
	heatmap.Min = -1
	heatmap.Max = 1
	p.Add(heatmap)

	p.NominalX(indicators...)
	reversed := make([]string, len(indicators))
	for i, name := range indicators {
		reversed[len(indicators)-1-i] = name
	}
	p.NominalY(reversed...)
	p.X.Tick.Label.Rotation = -1.2
	p.X.Tick.Label.XAlign = -0.9

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving heatmap: %w", err)
	}
	return nil
}
