package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
)

func (api *RestAPI) correlationsHandler(w http.ResponseWriter, r *http.Request) {
	data := stats.Correlations(api.Manager.Observations(), models.IndicatorNames())

	references := models.NewEmptyReferences()
	references.Indicators = data.Indicators

	response := models.NewEntryResponse(data, references)
	api.sendResponse(w, r, response)
}
