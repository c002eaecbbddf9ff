package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"lifeatlas.healthmetrics.org/internal/models"
)

// IncomeSchoolingScatter renders income composition of resources against
// years of schooling, one point per observation that has both values.
func IncomeSchoolingScatter(observations []models.Observation, path string) error {
	var points plotter.XYs
	for i := range observations {
		o := &observations[i]
		income, okIncome := o.Indicator("income-composition")
		schooling, okSchooling := o.Indicator("schooling")
		if !okIncome || !okSchooling {
			continue
		}
		points = append(points, plotter.XY{X: income, Y: schooling})
	}
	if len(points) == 0 {
		return fmt.Errorf("no observations with both income composition and schooling")
	}

	p := plot.New()
	p.Title.Text = "Income vs. Schooling Rates"
	p.X.Label.Text = "Income"
	p.Y.Label.Text = "Schooling Rates"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("error building scatter series: %w", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.NRGBA{R: 190, G: 86, B: 131, A: 128},
		Radius: vg.Points(3),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(scatter)

	if err := p.Save(10*vg.Inch, 7.5*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving scatter plot: %w", err)
	}
	return nil
}
