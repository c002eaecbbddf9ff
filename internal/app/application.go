package app

import (
	"log/slog"

	"lifeatlas.healthmetrics.org/internal/appconf"
	"lifeatlas.healthmetrics.org/internal/dataset"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the shared configuration, a logger, and the dataset
// manager every handler reads from.
type Application struct {
	Config        appconf.Config
	DatasetConfig dataset.Config
	Logger        *slog.Logger
	Manager       *dataset.Manager
}
