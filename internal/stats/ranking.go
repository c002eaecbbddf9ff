package stats

import (
	"sort"

	"lifeatlas.healthmetrics.org/internal/models"
)

// TopCountriesByYear ranks countries by life expectancy within each year and
// keeps the top n. Missing life expectancy counts as 0, so countries with no
// data sort last rather than disappearing. Ties break on country name.
func TopCountriesByYear(observations []models.Observation, n int) []models.YearRanking {
	byYear := make(map[int][]models.RankedCountry)
	for i := range observations {
		o := &observations[i]
		byYear[o.Year] = append(byYear[o.Year], models.RankedCountry{
			Country:        o.Country,
			LifeExpectancy: o.IndicatorOrZero("life-expectancy"),
		})
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	rankings := make([]models.YearRanking, 0, len(years))
	for _, year := range years {
		candidates := byYear[year]
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].LifeExpectancy != candidates[j].LifeExpectancy {
				return candidates[i].LifeExpectancy > candidates[j].LifeExpectancy
			}
			return candidates[i].Country < candidates[j].Country
		})

		if len(candidates) > n {
			candidates = candidates[:n]
		}

		rankings = append(rankings, models.YearRanking{
			Year:      year,
			Countries: candidates,
		})
	}

	return rankings
}

// TopCountriesForYear returns the ranking for a single year, or false when
// the year has no observations.
func TopCountriesForYear(observations []models.Observation, year, n int) (models.YearRanking, bool) {
	for _, ranking := range TopCountriesByYear(observations, n) {
		if ranking.Year == year {
			return ranking, true
		}
	}
	return models.YearRanking{}, false
}
