package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorNames(t *testing.T) {
	names := IndicatorNames()
	require.Len(t, names, 19)

	// Stable order, life expectancy first.
	assert.Equal(t, "life-expectancy", names[0])
	assert.Equal(t, "schooling", names[18])

	for _, name := range names {
		assert.True(t, IsIndicator(name), name)
	}
}

func TestIndicatorNamesReturnsCopy(t *testing.T) {
	names := IndicatorNames()
	names[0] = "mutated"

	assert.Equal(t, "life-expectancy", IndicatorNames()[0])
}

func TestIsIndicator(t *testing.T) {
	assert.True(t, IsIndicator("gdp"))
	assert.True(t, IsIndicator("thinness-5-9-years"))

	assert.False(t, IsIndicator("nonsense"))
	assert.False(t, IsIndicator(""))
	assert.False(t, IsIndicator("Life Expectancy"))
}

func TestIndicator(t *testing.T) {
	life := 81.8
	o := Observation{Country: "Norway", Year: 2015, Status: DevelopedStatus, LifeExpectancy: &life}

	v, ok := o.Indicator("life-expectancy")
	assert.True(t, ok)
	assert.Equal(t, 81.8, v)

	_, ok = o.Indicator("gdp")
	assert.False(t, ok)

	_, ok = o.Indicator("nonsense")
	assert.False(t, ok)
}

func TestIndicatorOrZero(t *testing.T) {
	life := 81.8
	o := Observation{Country: "Norway", Year: 2015, LifeExpectancy: &life}

	assert.Equal(t, 81.8, o.IndicatorOrZero("life-expectancy"))
	assert.Equal(t, 0.0, o.IndicatorOrZero("gdp"))
	assert.Equal(t, 0.0, o.IndicatorOrZero("nonsense"))
}
