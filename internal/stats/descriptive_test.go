package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeatlas.healthmetrics.org/internal/models"
)

func f(v float64) *float64 {
	return &v
}

func sampleObservations() []models.Observation {
	return []models.Observation{
		{Country: "Norway", Year: 2013, Status: "Developed", LifeExpectancy: f(81.5), GDP: f(102910.43)},
		{Country: "Norway", Year: 2014, Status: "Developed", LifeExpectancy: f(81.7), GDP: f(97019.18)},
		{Country: "Norway", Year: 2015, Status: "Developed", LifeExpectancy: f(81.8), GDP: f(74355.51)},
		{Country: "Chad", Year: 2013, Status: "Developing", LifeExpectancy: f(52.1), GDP: f(984.18)},
		{Country: "Chad", Year: 2014, Status: "Developing", LifeExpectancy: f(52.6), GDP: f(1025.31)},
		{Country: "Chad", Year: 2015, Status: "Developing", LifeExpectancy: f(53.1), GDP: f(775.70)},
	}
}

func TestValuesSkipsMissing(t *testing.T) {
	observations := sampleObservations()
	observations = append(observations, models.Observation{Country: "Angola", Year: 2015, Status: "Developing"})

	xs := Values(observations, "life-expectancy")
	assert.Len(t, xs, 6)

	xs = Values(observations, "schooling")
	assert.Empty(t, xs)
}

func TestSummary(t *testing.T) {
	summary, err := Summary(sampleObservations(), "life-expectancy")
	require.NoError(t, err)

	assert.Equal(t, "life-expectancy", summary.Indicator)
	assert.Equal(t, 6, summary.Count)
	assert.InDelta(t, 67.13, summary.Mean, 0.01)
	assert.Equal(t, 52.1, summary.Min)
	assert.Equal(t, 81.8, summary.Max)
	assert.Greater(t, summary.StdDev, 0.0)
	assert.InDelta(t, summary.StdDev*summary.StdDev, summary.Variance, 1e-9)
}

func TestSummaryUnknownIndicator(t *testing.T) {
	_, err := Summary(sampleObservations(), "nonsense")
	assert.Error(t, err)
}

func TestSummaryNoData(t *testing.T) {
	_, err := Summary(sampleObservations(), "schooling")
	assert.Error(t, err)
}
