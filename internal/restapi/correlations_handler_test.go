package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationsEndToEnd(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/correlations.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)

	indicators, ok := entry["indicators"].([]interface{})
	require.True(t, ok)
	require.Len(t, indicators, 19)

	matrix, ok := entry["matrix"].([]interface{})
	require.True(t, ok)
	require.Len(t, matrix, 19)

	for i, rawRow := range matrix {
		row, ok := rawRow.([]interface{})
		require.True(t, ok)
		require.Len(t, row, 19)

		diagonal, ok := row[i].(float64)
		require.True(t, ok)
		assert.Equal(t, 1.0, diagonal)
	}
}
