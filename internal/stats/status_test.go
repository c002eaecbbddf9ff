package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeatlas.healthmetrics.org/internal/models"
)

func TestAveragesByStatus(t *testing.T) {
	averages := AveragesByStatus(sampleObservations())
	require.Len(t, averages, 2)

	assert.Equal(t, "Developed", averages[0].Status)
	assert.InDelta(t, 81.67, averages[0].Average, 0.01)
	assert.Equal(t, 3, averages[0].Count)

	assert.Equal(t, "Developing", averages[1].Status)
	assert.InDelta(t, 52.6, averages[1].Average, 0.01)
	assert.Equal(t, 3, averages[1].Count)
}

func TestAveragesByStatusSkipsEmptyStatus(t *testing.T) {
	observations := append(sampleObservations(),
		models.Observation{Country: "Nowhere", Year: 2015, LifeExpectancy: f(70)})

	averages := AveragesByStatus(observations)
	assert.Len(t, averages, 2)
}

func TestYearlyAveragesByStatus(t *testing.T) {
	result, err := YearlyAveragesByStatus(sampleObservations(), "life-expectancy")
	require.NoError(t, err)

	assert.Equal(t, "life-expectancy", result.Indicator)
	assert.Equal(t, []int{2013, 2014, 2015}, result.Years)
	require.Len(t, result.Developed, 3)
	require.Len(t, result.Developing, 3)

	assert.InDelta(t, 81.5, result.Developed[0], 1e-9)
	assert.InDelta(t, 53.1, result.Developing[2], 1e-9)
}

func TestYearlyAveragesByStatusMissingGroupReportsZero(t *testing.T) {
	observations := []models.Observation{
		{Country: "Norway", Year: 2014, Status: "Developed", LifeExpectancy: f(81.7)},
		{Country: "Chad", Year: 2015, Status: "Developing", LifeExpectancy: f(53.1)},
	}

	result, err := YearlyAveragesByStatus(observations, "life-expectancy")
	require.NoError(t, err)

	assert.Equal(t, []int{2014, 2015}, result.Years)
	assert.Equal(t, 0.0, result.Developing[0])
	assert.Equal(t, 0.0, result.Developed[1])
}

func TestYearlyAveragesByStatusUnknownIndicator(t *testing.T) {
	_, err := YearlyAveragesByStatus(sampleObservations(), "nonsense")
	assert.Error(t, err)
}

func TestAveragesByStatusForIndicator(t *testing.T) {
	developed, developing := AveragesByStatusForIndicator(sampleObservations(), "life-expectancy")

	assert.InDelta(t, 81.67, developed, 0.01)
	assert.InDelta(t, 52.6, developing, 0.01)
}

func TestAveragesByStatusForIndicatorEmpty(t *testing.T) {
	developed, developing := AveragesByStatusForIndicator(nil, "life-expectancy")

	assert.Equal(t, 0.0, developed)
	assert.Equal(t, 0.0, developing)
}
