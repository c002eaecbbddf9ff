package models

// CountryReference is the compact country representation used in list
// responses and in the references block.
type CountryReference struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// NewCountryReference builds a CountryReference from a country name, slug id
// and development status.
func NewCountryReference(id, name, status string) CountryReference {
	return CountryReference{
		ID:     id,
		Name:   name,
		Status: status,
	}
}

// CountryEntry is the full payload for a single country: its reference plus
// every observation on record, oldest year first.
type CountryEntry struct {
	CountryReference
	Observations []Observation `json:"observations"`
}
