package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSummaryEndToEnd(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/status-summary.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, model)
	require.Len(t, list, 2)

	developed, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Developed", developed["status"])
	assert.Equal(t, float64(9), developed["count"])
	assert.InDelta(t, 82.08, developed["average"], 0.01)

	developing, ok := list[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Developing", developing["status"])
	assert.Equal(t, float64(12), developing["count"])
	assert.InDelta(t, 62.82, developing["average"], 0.01)
}
