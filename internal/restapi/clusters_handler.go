package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/simgraph"
	"lifeatlas.healthmetrics.org/internal/utils"
)

func (api *RestAPI) clustersHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	threshold, fieldErrors := utils.ParseFloatParam(params, "threshold", nil)
	if params.Get("threshold") == "" {
		threshold = defaultClusterThreshold
	}
	if err := utils.ValidateThreshold(threshold); err != nil {
		fieldErrors["threshold"] = append(fieldErrors["threshold"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	labels, rows := api.Manager.FeatureMatrix(defaultClusterFeatures)
	graph, err := simgraph.Build(labels, rows, threshold)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	data := graph.ClusterData(threshold, defaultClusterFeatures)

	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
