package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
	"lifeatlas.healthmetrics.org/internal/utils"
)

func (api *RestAPI) indicatorSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)
	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{"id": {err.Error()}}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !models.IsIndicator(id) {
		api.sendNotFound(w, r)
		return
	}

	summary, err := stats.Summary(api.Manager.Observations(), id)
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	references.Indicators = models.IndicatorNames()

	response := models.NewEntryResponse(summary, references)
	api.sendResponse(w, r, response)
}
