package dataset

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObservationsFixture(t *testing.T) {
	f, err := os.Open("testdata/life_expectancy.csv")
	require.NoError(t, err)
	defer f.Close() // nolint:errcheck

	observations, err := ParseObservations(f)
	require.NoError(t, err)

	// The Monaco row has no parseable year and is skipped.
	require.Len(t, observations, 21)

	first := observations[0]
	assert.Equal(t, "Germany", first.Country)
	assert.Equal(t, 2015, first.Year)
	assert.Equal(t, "Developed", first.Status)
	require.NotNil(t, first.LifeExpectancy)
	assert.Equal(t, 81.0, *first.LifeExpectancy)
	require.NotNil(t, first.Schooling)
	assert.Equal(t, 17.1, *first.Schooling)
}

func TestParseObservationsMissingCellsBecomeNil(t *testing.T) {
	f, err := os.Open("testdata/life_expectancy.csv")
	require.NoError(t, err)
	defer f.Close() // nolint:errcheck

	observations, err := ParseObservations(f)
	require.NoError(t, err)

	foundJapan, foundAngola := false, false
	for i := range observations {
		o := &observations[i]
		if o.Country == "Japan" && o.Year == 2015 {
			foundJapan = true
			assert.Nil(t, o.HepatitisB)
		}
		if o.Country == "Angola" && o.Year == 2015 {
			foundAngola = true
			assert.Nil(t, o.LifeExpectancy)
			assert.Nil(t, o.GDP)
		}
	}
	assert.True(t, foundJapan)
	assert.True(t, foundAngola)
}

func TestParseObservationsNormalizesHeaders(t *testing.T) {
	csv := "Country,Year,Status, Life   expectancy \n" +
		"Testland,2010,Developing,70.5\n"

	observations, err := ParseObservations(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, observations, 1)

	require.NotNil(t, observations[0].LifeExpectancy)
	assert.Equal(t, 70.5, *observations[0].LifeExpectancy)
}

func TestParseObservationsColumnOrderDoesNotMatter(t *testing.T) {
	csv := "Year,Status,Schooling,Country\n" +
		"2012,Developed,15.5,Testland\n"

	observations, err := ParseObservations(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, observations, 1)

	assert.Equal(t, "Testland", observations[0].Country)
	assert.Equal(t, 2012, observations[0].Year)
	require.NotNil(t, observations[0].Schooling)
	assert.Equal(t, 15.5, *observations[0].Schooling)
}

func TestParseObservationsRejectsMissingRequiredColumns(t *testing.T) {
	csv := "Country,Schooling\nTestland,15.5\n"

	_, err := ParseObservations(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParseObservationsRejectsEmptyBody(t *testing.T) {
	csv := "Country,Year,Status\n"

	_, err := ParseObservations(strings.NewReader(csv))
	assert.Error(t, err)
}
