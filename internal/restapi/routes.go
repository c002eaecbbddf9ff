package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every API endpoint on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/atlas/dataset-info.json", validateAPIKey(api, api.datasetInfoHandler))
	router.Handler(http.MethodGet, "/api/atlas/countries.json", validateAPIKey(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/atlas/country/:id", validateAPIKey(api, api.countryHandler))
	router.Handler(http.MethodGet, "/api/atlas/indicator-summary/:id", validateAPIKey(api, api.indicatorSummaryHandler))
	router.Handler(http.MethodGet, "/api/atlas/correlations.json", validateAPIKey(api, api.correlationsHandler))
	router.Handler(http.MethodGet, "/api/atlas/top-countries.json", validateAPIKey(api, api.topCountriesHandler))
	router.Handler(http.MethodGet, "/api/atlas/status-summary.json", validateAPIKey(api, api.statusSummaryHandler))
	router.Handler(http.MethodGet, "/api/atlas/clusters.json", validateAPIKey(api, api.clustersHandler))
}

// Handler builds the full HTTP handler: the routed API wrapped in the
// middleware chain (request logging outermost, then security headers, rate
// limiting and compression).
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)

	return handler
}
