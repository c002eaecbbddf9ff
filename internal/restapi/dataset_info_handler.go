package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
)

func (api *RestAPI) datasetInfoHandler(w http.ResponseWriter, r *http.Request) {
	manager := api.Manager

	info := models.NewDatasetInfo(
		manager.Source(),
		manager.LastUpdated(),
		len(manager.Observations()),
		len(manager.Countries()),
		len(manager.Years()),
	)

	response := models.NewEntryResponse(info, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
