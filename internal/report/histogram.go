package report

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
)

const histogramBins = 40

// MortalityHistograms renders adult mortality and infant deaths distributions
// as two stacked histograms in a single PNG.
func MortalityHistograms(observations []models.Observation, path string) error {
	adult, err := distributionPlot(observations, "adult-mortality", "Adult Mortality Distribution",
		color.NRGBA{R: 142, G: 166, B: 4, A: 255})
	if err != nil {
		return err
	}
	infant, err := distributionPlot(observations, "infant-deaths", "Infant Deaths Distribution",
		color.NRGBA{R: 255, G: 78, A: 255})
	if err != nil {
		return err
	}

	img := vgimg.New(12*vg.Inch, 8*vg.Inch)
	canvases := plot.Align(
		[][]*plot.Plot{{adult}, {infant}},
		draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter},
		draw.New(img),
	)
	adult.Draw(canvases[0][0])
	infant.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating histogram file: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close() // nolint:errcheck
		return fmt.Errorf("error writing histogram file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing histogram file: %w", err)
	}
	return nil
}

func distributionPlot(observations []models.Observation, indicator, title string, fill color.Color) (*plot.Plot, error) {
	values := stats.Values(observations, indicator)
	if len(values) == 0 {
		return nil, fmt.Errorf("no data for indicator %q", indicator)
	}

	p := plot.New()
	p.Title.Text = title

	hist, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return nil, fmt.Errorf("error building histogram for %q: %w", indicator, err)
	}
	hist.FillColor = fill
	p.Add(hist)

	return p, nil
}
