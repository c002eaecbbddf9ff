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

// FeatureComparisonBars renders a grouped bar chart of per-status averages
// for the given indicators, developed and developing side by side.
func FeatureComparisonBars(observations []models.Observation, indicators []string, path string) error {
	if len(indicators) == 0 {
		return fmt.Errorf("no indicators to compare")
	}

	developed := make(plotter.Values, len(indicators))
	developing := make(plotter.Values, len(indicators))
	for i, indicator := range indicators {
		if !models.IsIndicator(indicator) {
			return fmt.Errorf("unknown indicator %q", indicator)
		}
		developed[i], developing[i] = stats.AveragesByStatusForIndicator(observations, indicator)
	}

	p := plot.New()
	p.Title.Text = "Comparison of Features Between Developed and Developing Countries"
	p.X.Label.Text = "Features"
	p.Y.Label.Text = "Average"

	barWidth := vg.Points(18)

	developedBars, err := plotter.NewBarChart(developed, barWidth)
	if err != nil {
		return fmt.Errorf("error building developed bars: %w", err)
	}
	developedBars.Color = color.NRGBA{R: 190, G: 86, B: 131, A: 255}
	developedBars.LineStyle.Width = 0
	developedBars.Offset = -barWidth / 2

	developingBars, err := plotter.NewBarChart(developing, barWidth)
	if err != nil {
		return fmt.Errorf("error building developing bars: %w", err)
	}
	developingBars.Color = color.NRGBA{R: 110, G: 48, B: 75, A: 255}
	developingBars.LineStyle.Width = 0
	developingBars.Offset = barWidth / 2

	p.Add(developedBars, developingBars)
	p.Legend.Add("Developed", developedBars)
	p.Legend.Add("Developing", developingBars)
	p.Legend.Top = true
	p.NominalX(indicators...)

	if err := p.Save(12*vg.Inch, 6.75*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving comparison bars: %w", err)
	}
	return nil
}
