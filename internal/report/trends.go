package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
)

var (
	developedColor  = color.NRGBA{R: 220, A: 255}
	developingColor = color.NRGBA{B: 220, A: 255}
)

// AdultMortalityTrend renders per-year adult mortality averages for developed
// and developing countries, with the axis pinned to the usual data range.
func AdultMortalityTrend(observations []models.Observation, path string) error {
	return statusTrend(observations, "adult-mortality",
		"Developed vs Developing Adult Mortality Averages per Year",
		"Adult Mortality Averages", 250, path)
}

// InfantDeathsTrend is the infant deaths variant with a tighter axis.
func InfantDeathsTrend(observations []models.Observation, path string) error {
	return statusTrend(observations, "infant-deaths",
		"Developed vs Developing Infant Mortality Averages per Year",
		"Infant Mortality Averages", 50, path)
}

func statusTrend(observations []models.Observation, indicator, title, yLabel string, yMax float64, path string) error {
	averages, err := stats.YearlyAveragesByStatus(observations, indicator)
	if err != nil {
		return err
	}
	if len(averages.Years) == 0 {
		return fmt.Errorf("no observations with a development status")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Years"
	p.Y.Label.Text = yLabel

	developed := make(plotter.XYs, len(averages.Years))
	developing := make(plotter.XYs, len(averages.Years))
	for i, year := range averages.Years {
		developed[i] = plotter.XY{X: float64(year), Y: averages.Developed[i]}
		developing[i] = plotter.XY{X: float64(year), Y: averages.Developing[i]}
	}

	developedLine, err := plotter.NewLine(developed)
	if err != nil {
		return fmt.Errorf("error building developed series: %w", err)
	}
	developedLine.Color = developedColor

	developingLine, err := plotter.NewLine(developing)
	if err != nil {
		return fmt.Errorf("error building developing series: %w", err)
	}
	developingLine.Color = developingColor

	p.Add(developedLine, developingLine)
	p.Legend.Add("Developed", developedLine)
	p.Legend.Add("Developing", developingLine)
	p.Legend.Top = true

	p.Y.Min = 0
	p.Y.Max = yMax

	if err := p.Save(12*vg.Inch, 6.75*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving trend plot: %w", err)
	}
	return nil
}
