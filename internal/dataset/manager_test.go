package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeatlas.healthmetrics.org/internal/appconf"
)

func testManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := InitManager(Config{
		DataURL: "testdata/life_expectancy.csv",
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return manager
}

func TestInitManagerLoadsFixture(t *testing.T) {
	manager := testManager(t)

	assert.Equal(t, "testdata/life_expectancy.csv", manager.Source())
	assert.Len(t, manager.Observations(), 21)
	assert.False(t, manager.LastUpdated().IsZero())
}

func TestInitManagerFailsOnMissingFile(t *testing.T) {
	_, err := InitManager(Config{
		DataURL: "testdata/does_not_exist.csv",
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	assert.Error(t, err)
}

func TestManagerCountries(t *testing.T) {
	manager := testManager(t)

	countries := manager.Countries()
	require.Len(t, countries, 7)

	// Sorted by name.
	assert.Equal(t, "Angola", countries[0].Name)
	assert.Equal(t, "angola", countries[0].ID)
	assert.Equal(t, "Developing", countries[0].Status)
	assert.Equal(t, "Norway", countries[6].Name)
}

func TestManagerFindCountryBySlug(t *testing.T) {
	manager := testManager(t)

	name, ok := manager.FindCountryBySlug("germany")
	assert.True(t, ok)
	assert.Equal(t, "Germany", name)

	_, ok = manager.FindCountryBySlug("atlantis")
	assert.False(t, ok)
}

func TestManagerObservationsForCountry(t *testing.T) {
	manager := testManager(t)

	observations := manager.ObservationsForCountry("Germany")
	require.Len(t, observations, 3)

	// Oldest year first.
	assert.Equal(t, 2013, observations[0].Year)
	assert.Equal(t, 2015, observations[2].Year)
}

func TestManagerYears(t *testing.T) {
	manager := testManager(t)

	assert.Equal(t, []int{2013, 2014, 2015}, manager.Years())
}

func TestManagerFeatureMatrix(t *testing.T) {
	manager := testManager(t)

	labels, rows := manager.FeatureMatrix([]string{"life-expectancy", "gdp", "population"})

	// Cleaning imputes all three features, so every row qualifies.
	require.Len(t, labels, 21)
	require.Len(t, rows, 21)
	assert.Len(t, rows[0], 3)
	assert.Equal(t, "Germany", labels[0].Country)
	assert.Equal(t, 2015, labels[0].Year)
}

func TestManagerFeatureMatrixSkipsIncompleteRows(t *testing.T) {
	manager := testManager(t)

	// Hepatitis B is not imputed and all three Japan rows are missing it.
	labels, rows := manager.FeatureMatrix([]string{"hepatitis-b"})
	require.Len(t, labels, 18)
	require.Len(t, rows, 18)

	for _, label := range labels {
		assert.NotEqual(t, "Japan", label.Country)
	}
}

func TestManagerStoredObservationCount(t *testing.T) {
	manager := testManager(t)

	count, err := manager.StoredObservationCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(21), count)
}

func TestManagerShutdownIsIdempotent(t *testing.T) {
	manager, err := InitManager(Config{
		DataURL: "testdata/life_expectancy.csv",
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	require.NoError(t, err)

	manager.Shutdown()
	manager.Shutdown()
}
