package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"lifeatlas.healthmetrics.org/internal/app"
	"lifeatlas.healthmetrics.org/internal/appconf"
	"lifeatlas.healthmetrics.org/internal/dataset"
	"lifeatlas.healthmetrics.org/internal/logging"
	"lifeatlas.healthmetrics.org/internal/models"
)

// createTestApi creates a RestAPI instance backed by the fixture dataset.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	datasetConfig := dataset.Config{
		DataURL: filepath.Join("..", "dataset", "testdata", "life_expectancy.csv"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	}
	manager, err := dataset.InitManager(datasetConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		DatasetConfig: datasetConfig,
		Logger:        logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Manager:       manager,
	}

	return &RestAPI{Application: app}
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryFromResponse digs the entry payload out of a decoded envelope.
func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should contain an entry object")
	return entry
}

// listFromResponse digs the list payload out of a decoded envelope.
func listFromResponse(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should contain a list")
	return list
}
