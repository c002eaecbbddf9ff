package dataset

import "lifeatlas.healthmetrics.org/internal/models"

// Imputation defaults for the indicators the analysis depends on. Values
// follow the original cleaning pass: a mid-range life expectancy, the
// midpoint of the income composition index, and a modest GDP.
const (
	DefaultLifeExpectancy    = 65.0
	DefaultIncomeComposition = 0.5
	DefaultGDP               = 5000.0
)

// ImputationDefaults lets the pipeline config override the cleaning values.
type ImputationDefaults struct {
	LifeExpectancy    float64 `yaml:"life_expectancy"`
	IncomeComposition float64 `yaml:"income_composition"`
	GDP               float64 `yaml:"gdp"`
}

// StandardImputation returns the defaults used by the original analysis.
func StandardImputation() ImputationDefaults {
	return ImputationDefaults{
		LifeExpectancy:    DefaultLifeExpectancy,
		IncomeComposition: DefaultIncomeComposition,
		GDP:               DefaultGDP,
	}
}

// Clean fills the gaps the analysis cannot tolerate. Rows are never dropped:
// life expectancy, income composition and GDP get configured defaults, and
// adult mortality, infant deaths and schooling fall back to zero.
func Clean(observations []models.Observation, defaults ImputationDefaults) []models.Observation {
	cleaned := make([]models.Observation, len(observations))

	for i, o := range observations {
		o.LifeExpectancy = orDefault(o.LifeExpectancy, defaults.LifeExpectancy)
		o.IncomeComposition = orDefault(o.IncomeComposition, defaults.IncomeComposition)
		o.GDP = orDefault(o.GDP, defaults.GDP)
		o.AdultMortality = orDefault(o.AdultMortality, 0)
		o.InfantDeaths = orDefault(o.InfantDeaths, 0)
		o.Schooling = orDefault(o.Schooling, 0)
		cleaned[i] = o
	}

	return cleaned
}

func orDefault(p *float64, fallback float64) *float64 {
	if p != nil {
		return p
	}
	v := fallback
	return &v
}
