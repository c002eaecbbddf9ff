package dataset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"lifeatlas.healthmetrics.org/internal/models"
	"lifeatlas.healthmetrics.org/internal/utils"
	"lifeatlas.healthmetrics.org/lifedb"
)

// Manager owns the dataset: it loads and cleans the CSV, keeps the cleaned
// observations in memory, persists them to SQLite and refreshes URL sources
// in the background.
type Manager struct {
	source      string
	isLocalFile bool
	config      Config
	defaults    ImputationDefaults

	DB *lifedb.Client

	mu           sync.RWMutex
	observations []models.Observation
	lastUpdated  time.Time

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// RowLabel identifies one dataset row when building feature matrices.
type RowLabel struct {
	Country string
	Year    int
}

// InitManager initializes the Manager with the dataset from the given source.
// The source can be either a URL or a local file path.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DataURL, "http://") && !strings.HasPrefix(config.DataURL, "https://")
	defaults := StandardImputation()
	if config.Imputation != nil {
		defaults = *config.Imputation
	}

	observations, err := loadObservations(config.DataURL, isLocalFile, defaults)
	if err != nil {
		return nil, err
	}

	dbConfig := lifedb.NewConfig(config.DBPath, config.Env, config.Verbose)
	db, err := lifedb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("error building dataset database: %w", err)
	}

	manager := &Manager{
		source:       config.DataURL,
		isLocalFile:  isLocalFile,
		config:       config,
		defaults:     defaults,
		DB:           db,
		shutdownChan: make(chan struct{}),
	}
	manager.setObservations(observations)

	if err := manager.persist(observations); err != nil {
		return nil, fmt.Errorf("error persisting dataset: %w", err)
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.DB != nil {
			_ = manager.DB.Close()
		}
	})
}

func (manager *Manager) setObservations(observations []models.Observation) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.observations = observations
	manager.lastUpdated = time.Now()
}

func (manager *Manager) persist(observations []models.Observation) error {
	rows := make([]lifedb.Observation, len(observations))
	for i, o := range observations {
		rows[i] = lifedb.FromModel(o)
	}
	return lifedb.InsertObservationBatch(manager.DB.DB, rows)
}

// Observations returns the current cleaned dataset snapshot.
func (manager *Manager) Observations() []models.Observation {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.observations
}

// LastUpdated reports when the snapshot was loaded or last refreshed.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// Source returns the dataset origin (URL or file path).
func (manager *Manager) Source() string {
	return manager.source
}

// Countries returns one reference per distinct country, sorted by name.
func (manager *Manager) Countries() []models.CountryReference {
	seen := make(map[string]string)
	for _, o := range manager.Observations() {
		if _, ok := seen[o.Country]; !ok {
			seen[o.Country] = o.Status
		}
	}

	countries := make([]models.CountryReference, 0, len(seen))
	for name, status := range seen {
		countries = append(countries, models.NewCountryReference(utils.Slugify(name), name, status))
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	return countries
}

// FindCountryBySlug resolves a URL slug back to the country's dataset name.
func (manager *Manager) FindCountryBySlug(slug string) (string, bool) {
	for _, o := range manager.Observations() {
		if utils.Slugify(o.Country) == slug {
			return o.Country, true
		}
	}
	return "", false
}

// ObservationsForCountry returns the observations for one country, oldest
// year first.
func (manager *Manager) ObservationsForCountry(country string) []models.Observation {
	var result []models.Observation
	for _, o := range manager.Observations() {
		if o.Country == country {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})
	return result
}

// Years returns the distinct years present in the dataset, ascending.
func (manager *Manager) Years() []int {
	seen := make(map[int]struct{})
	for _, o := range manager.Observations() {
		seen[o.Year] = struct{}{}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// FeatureMatrix extracts the named indicators into one row per observation.
// Rows missing any requested feature are skipped, so the returned labels and
// rows always align.
func (manager *Manager) FeatureMatrix(features []string) ([]RowLabel, [][]float64) {
	observations := manager.Observations()

	labels := make([]RowLabel, 0, len(observations))
	rows := make([][]float64, 0, len(observations))

	for i := range observations {
		o := &observations[i]
		row := make([]float64, 0, len(features))
		complete := true
		for _, feature := range features {
			v, ok := o.Indicator(feature)
			if !ok {
				complete = false
				break
			}
			row = append(row, v)
		}
		if !complete {
			continue
		}
		labels = append(labels, RowLabel{Country: o.Country, Year: o.Year})
		rows = append(rows, row)
	}

	return labels, rows
}

// PrintStatistics logs a summary of the loaded snapshot.
func (manager *Manager) PrintStatistics() {
	observations := manager.Observations()
	fmt.Printf("Source: %s (Local File: %v)\n", manager.source, manager.isLocalFile)
	fmt.Printf("Last Updated: %s\n", manager.LastUpdated())
	fmt.Println("Observations Count: ", len(observations))
	fmt.Println("Countries Count: ", len(manager.Countries()))
	fmt.Println("Years Count: ", len(manager.Years()))
}

// StoredObservationCount reports how many rows the database holds; used by
// the dataset-info endpoint to confirm persistence is in sync.
func (manager *Manager) StoredObservationCount(ctx context.Context) (int64, error) {
	return manager.DB.Queries.CountObservations(ctx)
}
