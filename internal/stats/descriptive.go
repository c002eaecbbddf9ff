// Package stats computes the descriptive statistics the analysis and API are
// built on: indicator summaries, the Pearson correlation matrix, per-year
// rankings and developed-vs-developing aggregates.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"lifeatlas.healthmetrics.org/internal/models"
)

// Values extracts the present (non-missing, non-NaN) values of an indicator.
func Values(observations []models.Observation, indicator string) []float64 {
	var xs []float64
	for i := range observations {
		if v, ok := observations[i].Indicator(indicator); ok && !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	return xs
}

// Summary computes descriptive statistics for one indicator across the
// dataset. It returns an error when the indicator is unknown or has no data.
func Summary(observations []models.Observation, indicator string) (models.IndicatorSummary, error) {
	if !models.IsIndicator(indicator) {
		return models.IndicatorSummary{}, fmt.Errorf("unknown indicator %q", indicator)
	}

	xs := Values(observations, indicator)
	if len(xs) == 0 {
		return models.IndicatorSummary{}, fmt.Errorf("no data for indicator %q", indicator)
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return models.IndicatorSummary{
		Indicator: indicator,
		Count:     len(xs),
		Mean:      stat.Mean(xs, nil),
		Median:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev:    stat.StdDev(xs, nil),
		Variance:  stat.Variance(xs, nil),
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
	}, nil
}
