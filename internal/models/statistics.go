package models

// IndicatorSummary holds the descriptive statistics for one indicator across
// the whole dataset.
type IndicatorSummary struct {
	Indicator string  `json:"indicator"`
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	StdDev    float64 `json:"stdDev"`
	Variance  float64 `json:"variance"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// CorrelationData is the correlation matrix payload. Matrix[i][j] is the
// Pearson correlation between Indicators[i] and Indicators[j].
type CorrelationData struct {
	Indicators []string    `json:"indicators"`
	Matrix     [][]float64 `json:"matrix"`
}

// RankedCountry is one entry in a per-year life expectancy ranking.
type RankedCountry struct {
	Country        string  `json:"country"`
	LifeExpectancy float64 `json:"lifeExpectancy"`
}

// YearRanking holds the top countries for a single year.
type YearRanking struct {
	Year      int             `json:"year"`
	Countries []RankedCountry `json:"countries"`
}

// StatusAverage is the mean of an indicator for one development status.
type StatusAverage struct {
	Status  string  `json:"status"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// YearlyStatusAverages holds per-year means of an indicator split by
// development status, used for the developed-vs-developing trend charts.
type YearlyStatusAverages struct {
	Indicator  string    `json:"indicator"`
	Years      []int     `json:"years"`
	Developed  []float64 `json:"developed"`
	Developing []float64 `json:"developing"`
}
