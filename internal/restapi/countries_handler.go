package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	countries := api.Manager.Countries()

	response := models.NewListResponse(countries, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
