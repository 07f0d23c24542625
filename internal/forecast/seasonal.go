package forecast

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"plant-econ/internal/model"
)

// NextDaySeasonal forecasts tomorrow's price as the historical mean for
// tomorrow's day-of-year. Days of year never observed fall back to the
// all-time mean, so a series shorter than a year still forecasts.
func NextDaySeasonal(series model.PriceSeries) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("no price data available for forecasting")
	}
	sorted := series.Sorted()

	byDay := make(map[int][]float64)
	for _, pt := range sorted {
		day := pt.Timestamp.YearDay()
		byDay[day] = append(byDay[day], pt.Price)
	}

	tomorrow := sorted[len(sorted)-1].Timestamp.AddDate(0, 0, 1).YearDay()
	if vals, ok := byDay[tomorrow]; ok {
		return stats.Mean(vals)
	}
	return stats.Mean(sorted.Prices())
}
