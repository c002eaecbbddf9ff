package restapi

import (
	"net/http"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/stats"
	"lifeatlas.healthmetrics.org/internal/utils"
)

func (api *RestAPI) topCountriesHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var fieldErrors map[string][]string
	year, fieldErrors := utils.ParseIntParam(params, "year", nil)
	limit, fieldErrors := utils.ParseIntParam(params, "limit", fieldErrors)

	if limit == 0 {
		limit = defaultRankingLimit
	}
	if err := utils.ValidateLimit(limit); err != nil {
		fieldErrors["limit"] = append(fieldErrors["limit"], err.Error())
	}
	if params.Get("year") != "" {
		if err := utils.ValidateYear(year); err != nil {
			fieldErrors["year"] = append(fieldErrors["year"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations := api.Manager.Observations()

	if params.Get("year") != "" {
		ranking, ok := stats.TopCountriesForYear(observations, year, limit)
		if !ok {
			api.sendNotFound(w, r)
			return
		}
		response := models.NewEntryResponse(ranking, api.rankingReferences([]models.YearRanking{ranking}))
		api.sendResponse(w, r, response)
		return
	}

	rankings := stats.TopCountriesByYear(observations, limit)
	response := models.NewListResponse(rankings, api.rankingReferences(rankings))
	api.sendResponse(w, r, response)
}

// rankingReferences resolves the ranked country names into references, so
// clients get slugs and statuses without a second request.
func (api *RestAPI) rankingReferences(rankings []models.YearRanking) models.ReferencesModel {
	ranked := make(map[string]struct{})
	for _, ranking := range rankings {
		for _, c := range ranking.Countries {
			ranked[c.Country] = struct{}{}
		}
	}

	references := models.NewEmptyReferences()
	for _, country := range api.Manager.Countries() {
		if _, ok := ranked[country.Name]; ok {
			references.Countries = append(references.Countries, country)
		}
	}
	return references
}
