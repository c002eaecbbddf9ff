package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lifeatlas.healthmetrics.org/internal/models"
)

// GDPLinePlot renders GDP across the dataset, one point per observation that
// reports GDP, in row order.
func GDPLinePlot(observations []models.Observation, path string) error {
	var points plotter.XYs
	for i := range observations {
		gdp, ok := observations[i].Indicator("gdp")
		if !ok {
			continue
		}
		points = append(points, plotter.XY{X: float64(len(points)), Y: gdp})
	}
	if len(points) == 0 {
		return fmt.Errorf("no observations with GDP")
	}

	p := plot.New()
	p.Title.Text = "GDP per Country Distribution"
	p.X.Label.Text = "Record"
	p.Y.Label.Text = "GDP"

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("error building GDP series: %w", err)
	}
	line.Color = color.NRGBA{B: 220, A: 255}
	p.Add(line)

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving GDP line plot: %w", err)
	}
	return nil
}
