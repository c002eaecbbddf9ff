package restapi

import (
	"net/http"
	"time"

	"lifeatlas.healthmetrics.org/internal/app"
)

// Default clustering parameters for on-demand requests; they match the batch
// pipeline defaults.
const defaultClusterThreshold = 0.8

var defaultClusterFeatures = []string{"life-expectancy", "gdp", "population"}

// defaultRankingLimit is how many countries a per-year ranking keeps when the
// request does not specify a limit.
const defaultRankingLimit = 5

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
