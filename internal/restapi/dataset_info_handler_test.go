package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetInfoRequiresValidApiKey(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/dataset-info.json")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}

func TestDatasetInfoEndToEnd(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/dataset-info.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry := entryFromResponse(t, model)
	assert.Equal(t, float64(21), entry["observations"])
	assert.Equal(t, float64(7), entry["countries"])
	assert.Equal(t, float64(3), entry["years"])
	assert.NotEmpty(t, entry["source"])
	assert.NotEmpty(t, entry["lastUpdated"])
}
