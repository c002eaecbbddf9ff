package models

// ReferencesModel carries related entities alongside a response payload so
// clients do not need follow-up requests to resolve names.
type ReferencesModel struct {
	Countries  []CountryReference `json:"countries"`
	Indicators []string           `json:"indicators"`
}

// NewEmptyReferences creates a References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Countries:  []CountryReference{},
		Indicators: []string{},
	}
}
