package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorSummaryEndToEnd(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/indicator-summary/life-expectancy.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	assert.Equal(t, "life-expectancy", entry["indicator"])
	assert.Equal(t, float64(21), entry["count"])

	mean, ok := entry["mean"].(float64)
	assert.True(t, ok)
	assert.Greater(t, mean, 50.0)
	assert.Less(t, mean, 90.0)

	min, ok := entry["min"].(float64)
	assert.True(t, ok)
	max, ok := entry["max"].(float64)
	assert.True(t, ok)
	assert.LessOrEqual(t, min, max)
}

func TestIndicatorSummaryUnknownIndicator(t *testing.T) {
	api := createTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/indicator-summary/nonsense.json?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
