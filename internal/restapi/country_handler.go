package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/utils"
)

func (api *RestAPI) countryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)
	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{"id": {err.Error()}}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	name, ok := api.Manager.FindCountryBySlug(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	observations := api.Manager.ObservationsForCountry(name)
	entry := models.CountryEntry{
		CountryReference: models.NewCountryReference(id, name, observations[0].Status),
		Observations:     observations,
	}

	references := models.NewEmptyReferences()
	references.Indicators = models.IndicatorNames()

	response := models.NewEntryResponse(entry, references)
	api.sendResponse(w, r, response)
}
