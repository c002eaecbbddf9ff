package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeatlas.healthmetrics.org/internal/models"
)

func TestIndicatorColumns(t *testing.T) {
	observations := sampleObservations()
	observations = append(observations, models.Observation{Country: "Angola", Year: 2015, Status: "Developing"})

	columns := IndicatorColumns(observations, []string{"life-expectancy", "gdp"})
	require.Len(t, columns, 2)
	require.Len(t, columns[0], 7)
	require.Len(t, columns[1], 7)

	// The row with no data contributes zeros, keeping columns aligned.
	assert.Equal(t, 0.0, columns[0][6])
	assert.Equal(t, 0.0, columns[1][6])
}

func TestCorrelationMatrix(t *testing.T) {
	columns := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{4, 3, 2, 1},
	}

	matrix := CorrelationMatrix(columns)
	require.Len(t, matrix, 3)

	for i := range matrix {
		assert.Equal(t, 1.0, matrix[i][i])
	}

	// Perfectly correlated and anti-correlated pairs.
	assert.InDelta(t, 1.0, matrix[0][1], 1e-9)
	assert.InDelta(t, -1.0, matrix[0][2], 1e-9)
	assert.InDelta(t, matrix[0][1], matrix[1][0], 1e-9)
}

func TestCorrelationMatrixZeroVariance(t *testing.T) {
	columns := [][]float64{
		{1, 2, 3},
		{5, 5, 5},
	}

	matrix := CorrelationMatrix(columns)

	// A constant column correlates as 0, not NaN.
	expected := [][]float64{
		{1, 0},
		{0, 1},
	}
	if diff := cmp.Diff(expected, matrix); diff != "" {
		t.Errorf("correlation matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestCorrelations(t *testing.T) {
	data := Correlations(sampleObservations(), []string{"life-expectancy", "gdp"})

	assert.Equal(t, []string{"life-expectancy", "gdp"}, data.Indicators)
	require.Len(t, data.Matrix, 2)

	// Life expectancy and GDP move together in the sample.
	assert.Greater(t, data.Matrix[0][1], 0.9)
}
