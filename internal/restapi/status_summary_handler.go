package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
)

func (api *RestAPI) statusSummaryHandler(w http.ResponseWriter, r *http.Request) {
	averages := stats.AveragesByStatus(api.Manager.Observations())

	response := models.NewListResponse(averages, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
