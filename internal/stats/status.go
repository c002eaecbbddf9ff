package stats

import (
	"fmt"
	"sort"

	"lifeatlas.healthmetrics.org/internal/models"
)

// AveragesByStatus computes the mean life expectancy for each development
// status present in the dataset. Rows with an empty status are ignored.
func AveragesByStatus(observations []models.Observation) []models.StatusAverage {
	totals := make(map[string]struct {
		sum   float64
		count int
	})

	for i := range observations {
		o := &observations[i]
		if o.Status == "" {
			continue
		}
		entry := totals[o.Status]
		entry.sum += o.IndicatorOrZero("life-expectancy")
		entry.count++
		totals[o.Status] = entry
	}

	averages := make([]models.StatusAverage, 0, len(totals))
	for status, entry := range totals {
		averages = append(averages, models.StatusAverage{
			Status:  status,
			Average: entry.sum / float64(entry.count),
			Count:   entry.count,
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Status < averages[j].Status
	})

	return averages
}

// YearlyAveragesByStatus computes per-year means of an indicator split into
// developed and developing groups. Years where a group has no rows report 0,
// which keeps the two series aligned for charting.
func YearlyAveragesByStatus(observations []models.Observation, indicator string) (models.YearlyStatusAverages, error) {
	if !models.IsIndicator(indicator) {
		return models.YearlyStatusAverages{}, fmt.Errorf("unknown indicator %q", indicator)
	}

	type key struct {
		year   int
		status string
	}
	totals := make(map[key]struct {
		sum   float64
		count int
	})
	yearSet := make(map[int]struct{})

	for i := range observations {
		o := &observations[i]
		if o.Status == "" {
			continue
		}
		k := key{year: o.Year, status: o.Status}
		entry := totals[k]
		entry.sum += o.IndicatorOrZero(indicator)
		entry.count++
		totals[k] = entry
		yearSet[o.Year] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	result := models.YearlyStatusAverages{
		Indicator:  indicator,
		Years:      years,
		Developed:  make([]float64, len(years)),
		Developing: make([]float64, len(years)),
	}

	for i, year := range years {
		if entry, ok := totals[key{year: year, status: models.DevelopedStatus}]; ok && entry.count > 0 {
			result.Developed[i] = entry.sum / float64(entry.count)
		}
		if entry, ok := totals[key{year: year, status: models.DevelopingStatus}]; ok && entry.count > 0 {
			result.Developing[i] = entry.sum / float64(entry.count)
		}
	}

	return result, nil
}

// AveragesByStatusForIndicator computes one mean per development status for
// an arbitrary indicator; used by the feature comparison chart.
func AveragesByStatusForIndicator(observations []models.Observation, indicator string) (developed, developing float64) {
	var devSum, devCount, dingSum, dingCount float64

	for i := range observations {
		o := &observations[i]
		v := o.IndicatorOrZero(indicator)
		switch o.Status {
		case models.DevelopedStatus:
			devSum += v
			devCount++
		case models.DevelopingStatus:
			dingSum += v
			dingCount++
		}
	}

	if devCount > 0 {
		developed = devSum / devCount
	}
	if dingCount > 0 {
		developing = dingSum / dingCount
	}
	return developed, developing
}
