package models

// Observation is a single country-year row from the life expectancy dataset.
// Numeric columns are pointers because the source data has gaps; cleaning
// fills the ones the analysis depends on (see dataset.Clean).
type Observation struct {
	Country               string   `json:"country"`
	Year                  int      `json:"year"`
	Status                string   `json:"status"`
	LifeExpectancy        *float64 `json:"lifeExpectancy"`
	AdultMortality        *float64 `json:"adultMortality"`
	InfantDeaths          *float64 `json:"infantDeaths"`
	Alcohol               *float64 `json:"alcohol"`
	PercentageExpenditure *float64 `json:"percentageExpenditure"`
	HepatitisB            *float64 `json:"hepatitisB"`
	Measles               *float64 `json:"measles"`
	BMI                   *float64 `json:"bmi"`
	UnderFiveDeaths       *float64 `json:"underFiveDeaths"`
	Polio                 *float64 `json:"polio"`
	TotalExpenditure      *float64 `json:"totalExpenditure"`
	Diphtheria            *float64 `json:"diphtheria"`
	HIVAIDS               *float64 `json:"hivAids"`
	GDP                   *float64 `json:"gdp"`
	Population            *float64 `json:"population"`
	ThinnessTenNineteen   *float64 `json:"thinness10To19Years"`
	ThinnessFiveNine      *float64 `json:"thinness5To9Years"`
	IncomeComposition     *float64 `json:"incomeComposition"`
	Schooling             *float64 `json:"schooling"`
}

// DevelopedStatus and DevelopingStatus are the two values the dataset uses in
// its Status column.
const (
	DevelopedStatus  = "Developed"
	DevelopingStatus = "Developing"
)

// indicatorAccessors maps the public indicator slug to the field holding it.
var indicatorAccessors = map[string]func(*Observation) *float64{
	"life-expectancy":        func(o *Observation) *float64 { return o.LifeExpectancy },
	"adult-mortality":        func(o *Observation) *float64 { return o.AdultMortality },
	"infant-deaths":          func(o *Observation) *float64 { return o.InfantDeaths },
	"alcohol":                func(o *Observation) *float64 { return o.Alcohol },
	"percentage-expenditure": func(o *Observation) *float64 { return o.PercentageExpenditure },
	"hepatitis-b":            func(o *Observation) *float64 { return o.HepatitisB },
	"measles":                func(o *Observation) *float64 { return o.Measles },
	"bmi":                    func(o *Observation) *float64 { return o.BMI },
	"under-five-deaths":      func(o *Observation) *float64 { return o.UnderFiveDeaths },
	"polio":                  func(o *Observation) *float64 { return o.Polio },
	"total-expenditure":      func(o *Observation) *float64 { return o.TotalExpenditure },
	"diphtheria":             func(o *Observation) *float64 { return o.Diphtheria },
	"hiv-aids":               func(o *Observation) *float64 { return o.HIVAIDS },
	"gdp":                    func(o *Observation) *float64 { return o.GDP },
	"population":             func(o *Observation) *float64 { return o.Population },
	"thinness-10-19-years":   func(o *Observation) *float64 { return o.ThinnessTenNineteen },
	"thinness-5-9-years":     func(o *Observation) *float64 { return o.ThinnessFiveNine },
	"income-composition":     func(o *Observation) *float64 { return o.IncomeComposition },
	"schooling":              func(o *Observation) *float64 { return o.Schooling },
}

// indicatorOrder keeps API output stable; maps iterate randomly.
var indicatorOrder = []string{
	"life-expectancy",
	"adult-mortality",
	"infant-deaths",
	"alcohol",
	"percentage-expenditure",
	"hepatitis-b",
	"measles",
	"bmi",
	"under-five-deaths",
	"polio",
	"total-expenditure",
	"diphtheria",
	"hiv-aids",
	"gdp",
	"population",
	"thinness-10-19-years",
	"thinness-5-9-years",
	"income-composition",
	"schooling",
}

// IndicatorNames returns the slugs of every numeric indicator, in a stable
// order.
func IndicatorNames() []string {
	names := make([]string, len(indicatorOrder))
	copy(names, indicatorOrder)
	return names
}

// IsIndicator reports whether name is a known indicator slug.
func IsIndicator(name string) bool {
	_, ok := indicatorAccessors[name]
	return ok
}

// Indicator returns the value of the named indicator for this observation.
// The second return is false when the indicator is unknown or the value is
// missing.
func (o *Observation) Indicator(name string) (float64, bool) {
	accessor, ok := indicatorAccessors[name]
	if !ok {
		return 0, false
	}
	ptr := accessor(o)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// IndicatorOrZero returns the named indicator value, or 0 when missing. This
// matches how the original analysis treated unparseable cells.
func (o *Observation) IndicatorOrZero(name string) float64 {
	v, ok := o.Indicator(name)
	if !ok {
		return 0
	}
	return v
}
