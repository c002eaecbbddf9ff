package dataset

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"lifeatlas.healthmetrics.org/internal/models"
)

func rawDatasetBytes(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading dataset: %w", err)
		}
		defer resp.Body.Close() // nolint

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading dataset: unexpected status %s", resp.Status)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading dataset response: %w", err)
		}
	}
	return b, nil
}

// loadObservations loads and parses the dataset from either a URL or a local
// file, applying the cleaning pass.
func loadObservations(source string, isLocalFile bool, defaults ImputationDefaults) ([]models.Observation, error) {
	b, err := rawDatasetBytes(source, isLocalFile)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	observations, err := ParseObservations(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("error parsing dataset: %w", err)
	}

	return Clean(observations, defaults), nil
}

// refreshPeriodically re-downloads the dataset on a regular schedule.
// Only runs if the source is a URL, not a local file.
func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	if manager.isLocalFile {
		log.Printf("dataset source is a local file, skipping periodic refresh")
		return
	}

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			observations, err := loadObservations(manager.source, false, manager.defaults)
			if err != nil {
				// Log but don't crash; the previous snapshot stays live.
				log.Printf("error refreshing dataset: %v", err)
				continue
			}

			manager.setObservations(observations)

			if err := manager.persist(observations); err != nil {
				log.Printf("error persisting refreshed dataset: %v", err)
			}
		case <-manager.shutdownChan:
			log.Println("shutting down dataset refresh")
			return
		}
	}
}
