package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lifeatlas.healthmetrics.org/internal/models"
)

// columnSetters maps normalized header names to observation field setters.
// The WHO CSV export has untidy headers ("Life expectancy ", " BMI ",
// " thinness  1-19 years"), so matching happens on a normalized form.
var columnSetters = map[string]func(*models.Observation, *float64){
	"life expectancy":                 func(o *models.Observation, v *float64) { o.LifeExpectancy = v },
	"adult mortality":                 func(o *models.Observation, v *float64) { o.AdultMortality = v },
	"infant deaths":                   func(o *models.Observation, v *float64) { o.InfantDeaths = v },
	"alcohol":                         func(o *models.Observation, v *float64) { o.Alcohol = v },
	"percentage expenditure":          func(o *models.Observation, v *float64) { o.PercentageExpenditure = v },
	"hepatitis b":                     func(o *models.Observation, v *float64) { o.HepatitisB = v },
	"measles":                         func(o *models.Observation, v *float64) { o.Measles = v },
	"bmi":                             func(o *models.Observation, v *float64) { o.BMI = v },
	"under-five deaths":               func(o *models.Observation, v *float64) { o.UnderFiveDeaths = v },
	"polio":                           func(o *models.Observation, v *float64) { o.Polio = v },
	"total expenditure":               func(o *models.Observation, v *float64) { o.TotalExpenditure = v },
	"diphtheria":                      func(o *models.Observation, v *float64) { o.Diphtheria = v },
	"hiv/aids":                        func(o *models.Observation, v *float64) { o.HIVAIDS = v },
	"gdp":                             func(o *models.Observation, v *float64) { o.GDP = v },
	"population":                      func(o *models.Observation, v *float64) { o.Population = v },
	"thinness 1-19 years":             func(o *models.Observation, v *float64) { o.ThinnessTenNineteen = v },
	"thinness 10-19 years":            func(o *models.Observation, v *float64) { o.ThinnessTenNineteen = v },
	"thinness 5-9 years":              func(o *models.Observation, v *float64) { o.ThinnessFiveNine = v },
	"income composition of resources": func(o *models.Observation, v *float64) { o.IncomeComposition = v },
	"schooling":                       func(o *models.Observation, v *float64) { o.Schooling = v },
}

// normalizeHeader lowercases a header cell and collapses runs of whitespace.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// ParseObservations reads the life expectancy CSV and returns one observation
// per row. Columns are matched by header name, so column order does not
// matter. Unparseable numeric cells become nil rather than failing the row.
func ParseObservations(r io.Reader) ([]models.Observation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // source rows are occasionally ragged

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	countryCol, yearCol, statusCol := -1, -1, -1
	setters := make(map[int]func(*models.Observation, *float64))

	for i, cell := range header {
		name := normalizeHeader(cell)
		switch name {
		case "country":
			countryCol = i
		case "year":
			yearCol = i
		case "status":
			statusCol = i
		default:
			if setter, ok := columnSetters[name]; ok {
				setters[i] = setter
			}
		}
	}

	if countryCol < 0 || yearCol < 0 || statusCol < 0 {
		return nil, fmt.Errorf("CSV is missing required columns (country/year/status), header: %v", header)
	}

	var observations []models.Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}

		var o models.Observation
		o.Country = strings.TrimSpace(cellAt(record, countryCol))
		o.Status = strings.TrimSpace(cellAt(record, statusCol))

		year, err := strconv.Atoi(strings.TrimSpace(cellAt(record, yearCol)))
		if err != nil {
			continue // rows without a parseable year carry no usable data
		}
		o.Year = year

		for col, setter := range setters {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cellAt(record, col)), 64); err == nil {
				value := v
				setter(&o, &value)
			}
		}

		observations = append(observations, o)
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("CSV contains no data rows")
	}

	return observations, nil
}

func cellAt(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
