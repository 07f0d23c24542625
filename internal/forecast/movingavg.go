// Package forecast provides single-step price forecasts (moving average,
// ARIMA, seasonal day-of-year average) and a backcast harness that measures a
// forecast function against history.
package forecast

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"plant-econ/internal/model"
)

// DefaultWindow is the trailing window used by the hourly moving average.
const DefaultWindow = 24

// MovingAverage forecasts the next observation as the mean of the trailing
// window observations. A window larger than the series uses the whole series.
func MovingAverage(series model.PriceSeries, window int) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("no price data available for forecasting")
	}
	if window <= 0 {
		return 0, fmt.Errorf("window must be > 0")
	}
	return stats.Mean(series.Tail(window).Prices())
}

// NextHour is the ForecastFunc form of MovingAverage with the default window.
func NextHour(series model.PriceSeries) (float64, error) {
	return MovingAverage(series, DefaultWindow)
}
