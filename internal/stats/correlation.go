package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"lifeatlas.healthmetrics.org/internal/models"
)

// IndicatorColumns extracts one column per named indicator, with missing
// values treated as 0. Every column has one entry per observation, so the
// columns stay aligned for correlation.
func IndicatorColumns(observations []models.Observation, indicators []string) [][]float64 {
	columns := make([][]float64, len(indicators))
	for i, name := range indicators {
		column := make([]float64, len(observations))
		for j := range observations {
			column[j] = observations[j].IndicatorOrZero(name)
		}
		columns[i] = column
	}
	return columns
}

// CorrelationMatrix computes the Pearson correlation for every column pair.
// Columns with zero variance correlate as 0 instead of NaN; the diagonal is
// always 1.
func CorrelationMatrix(columns [][]float64) [][]float64 {
	n := len(columns)
	matrix := make([][]float64, n)

	for i := 0; i < n; i++ {
		matrix[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			r := stat.Correlation(columns[i], columns[j], nil)
			if math.IsNaN(r) {
				r = 0
			}
			matrix[i][j] = r
		}
	}

	return matrix
}

// Correlations builds the full correlation payload for the given indicators.
func Correlations(observations []models.Observation, indicators []string) models.CorrelationData {
	columns := IndicatorColumns(observations, indicators)
	return models.CorrelationData{
		Indicators: indicators,
		Matrix:     CorrelationMatrix(columns),
	}
}
