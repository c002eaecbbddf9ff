package models

import "time"

// DatasetInfo describes the loaded dataset snapshot.
type DatasetInfo struct {
	Source       string `json:"source"`
	LastUpdated  string `json:"lastUpdated"`
	Observations int    `json:"observations"`
	Countries    int    `json:"countries"`
	Years        int    `json:"years"`
}

// NewDatasetInfo builds a DatasetInfo with the last-updated time rendered as
// RFC 3339.
func NewDatasetInfo(source string, lastUpdated time.Time, observations, countries, years int) DatasetInfo {
	return DatasetInfo{
		Source:       source,
		LastUpdated:  lastUpdated.Format(time.RFC3339),
		Observations: observations,
		Countries:    countries,
		Years:        years,
	}
}
