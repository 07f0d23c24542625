package forecast

import (
	"fmt"
	"time"

	"plant-econ/internal/model"
)

// ForecastFunc produces a single-step forecast from a historical slice.
type ForecastFunc func(series model.PriceSeries) (float64, error)

// BackcastRow compares one forecast against the value that actually occurred.
type BackcastRow struct {
	Timestamp time.Time `json:"timestamp"`
	Actual    float64   `json:"actual"`
	Predicted float64   `json:"predicted"`
	Error     float64   `json:"error"`
}

// Backcast walks fn over the series: for every index >= window it forecasts
// from the preceding window observations and records the error against the
// actual value at that index. The series must be longer than the window.
func Backcast(series model.PriceSeries, fn ForecastFunc, window int) ([]BackcastRow, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be > 0")
	}
	if len(series) <= window {
		return nil, fmt.Errorf("series length %d must exceed window %d", len(series), window)
	}
	sorted := series.Sorted()

	rows := make([]BackcastRow, 0, len(sorted)-window)
	for i := window; i < len(sorted); i++ {
		predicted, err := fn(sorted[i-window : i])
		if err != nil {
			return nil, fmt.Errorf("forecast at index %d: %w", i, err)
		}
		actual := sorted[i].Price
		rows = append(rows, BackcastRow{
			Timestamp: sorted[i].Timestamp,
			Actual:    actual,
			Predicted: predicted,
			Error:     actual - predicted,
		})
	}
	return rows, nil
}
