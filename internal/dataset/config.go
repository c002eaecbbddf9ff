package dataset

import (
	"time"

	"lifeatlas.healthmetrics.org/internal/appconf"
)

// Config holds the settings for the dataset Manager.
type Config struct {
	// DataURL is the CSV source: either an http(s) URL or a local file path.
	DataURL string
	// DBPath is the SQLite database location (":memory:" for tests).
	DBPath string
	Env    appconf.Environment
	// RefreshInterval controls how often URL sources are re-downloaded.
	// Zero means the 24 hour default.
	RefreshInterval time.Duration
	// Imputation overrides the cleaning defaults; nil means StandardImputation.
	Imputation *ImputationDefaults
	Verbose    bool
}

const defaultRefreshInterval = 24 * time.Hour

func (c Config) refreshInterval() time.Duration {
	if c.RefreshInterval <= 0 {
		return defaultRefreshInterval
	}
	return c.RefreshInterval
}
