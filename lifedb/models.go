package lifedb

import (
	"database/sql"

	"lifeatlas.healthmetrics.org/internal/models"
)

// Observation is a single country-year row as stored in the observations
// table. Nullable indicators are kept as NULL rather than imputed; imputation
// happens in the dataset package before persistence.
type Observation struct {
	Country               string
	Year                  int64
	Status                string
	LifeExpectancy        sql.NullFloat64
	AdultMortality        sql.NullFloat64
	InfantDeaths          sql.NullFloat64
	Alcohol               sql.NullFloat64
	PercentageExpenditure sql.NullFloat64
	HepatitisB            sql.NullFloat64
	Measles               sql.NullFloat64
	BMI                   sql.NullFloat64
	UnderFiveDeaths       sql.NullFloat64
	Polio                 sql.NullFloat64
	TotalExpenditure      sql.NullFloat64
	Diphtheria            sql.NullFloat64
	HIVAIDS               sql.NullFloat64
	GDP                   sql.NullFloat64
	Population            sql.NullFloat64
	Thinness1019          sql.NullFloat64
	Thinness59            sql.NullFloat64
	IncomeComposition     sql.NullFloat64
	Schooling             sql.NullFloat64
}

// Country is one distinct country with its development status.
type Country struct {
	Name   string
	Status string
}

// ClusterRun records the parameters of one clustering pass.
type ClusterRun struct {
	ID        int64
	Threshold float64
	Features  string // comma-separated indicator slugs
	CreatedAt string // RFC 3339
}

// ClusterMember is one dataset row assigned to a cluster within a run.
type ClusterMember struct {
	RunID          int64
	ClusterID      int64
	Country        string
	Year           int64
	Representative bool
}

// GraphEdge is one similarity edge persisted for a run.
type GraphEdge struct {
	RunID  int64
	Source string
	Target string
	Weight float64
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// FromModel converts an in-memory observation into its storage form.
func FromModel(o models.Observation) Observation {
	return Observation{
		Country:               o.Country,
		Year:                  int64(o.Year),
		Status:                o.Status,
		LifeExpectancy:        nullFloat(o.LifeExpectancy),
		AdultMortality:        nullFloat(o.AdultMortality),
		InfantDeaths:          nullFloat(o.InfantDeaths),
		Alcohol:               nullFloat(o.Alcohol),
		PercentageExpenditure: nullFloat(o.PercentageExpenditure),
		HepatitisB:            nullFloat(o.HepatitisB),
		Measles:               nullFloat(o.Measles),
		BMI:                   nullFloat(o.BMI),
		UnderFiveDeaths:       nullFloat(o.UnderFiveDeaths),
		Polio:                 nullFloat(o.Polio),
		TotalExpenditure:      nullFloat(o.TotalExpenditure),
		Diphtheria:            nullFloat(o.Diphtheria),
		HIVAIDS:               nullFloat(o.HIVAIDS),
		GDP:                   nullFloat(o.GDP),
		Population:            nullFloat(o.Population),
		Thinness1019:          nullFloat(o.ThinnessTenNineteen),
		Thinness59:            nullFloat(o.ThinnessFiveNine),
		IncomeComposition:     nullFloat(o.IncomeComposition),
		Schooling:             nullFloat(o.Schooling),
	}
}

// ToModel converts a storage row back into an in-memory observation.
func (o Observation) ToModel() models.Observation {
	return models.Observation{
		Country:               o.Country,
		Year:                  int(o.Year),
		Status:                o.Status,
		LifeExpectancy:        floatPtr(o.LifeExpectancy),
		AdultMortality:        floatPtr(o.AdultMortality),
		InfantDeaths:          floatPtr(o.InfantDeaths),
		Alcohol:               floatPtr(o.Alcohol),
		PercentageExpenditure: floatPtr(o.PercentageExpenditure),
		HepatitisB:            floatPtr(o.HepatitisB),
		Measles:               floatPtr(o.Measles),
		BMI:                   floatPtr(o.BMI),
		UnderFiveDeaths:       floatPtr(o.UnderFiveDeaths),
		Polio:                 floatPtr(o.Polio),
		TotalExpenditure:      floatPtr(o.TotalExpenditure),
		Diphtheria:            floatPtr(o.Diphtheria),
		HIVAIDS:               floatPtr(o.HIVAIDS),
		GDP:                   floatPtr(o.GDP),
		Population:            floatPtr(o.Population),
		ThinnessTenNineteen:   floatPtr(o.Thinness1019),
		ThinnessFiveNine:      floatPtr(o.Thinness59),
		IncomeComposition:     floatPtr(o.IncomeComposition),
		Schooling:             floatPtr(o.Schooling),
	}
}
