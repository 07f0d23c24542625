package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-econ/internal/api/models"
	"plant-econ/internal/forecast"
	"plant-econ/internal/model"
)

// ForecastHandler serves single-step forecasts and backcasts.
type ForecastHandler struct{}

func NewForecastHandler() *ForecastHandler {
	return &ForecastHandler{}
}

// Forecast handles POST /api/v1/forecast.
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, err := resolveSeries(c.Request.Context(), req.Source, req.APIKey)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	fn, err := forecastFunc(req.Method, req.Window, req.Order)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_METHOD", err.Error())
		return
	}

	value, err := fn(series)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "FORECAST_FAILED", err.Error())
		return
	}

	log.Printf("[Forecast] method=%s points=%d forecast=%.4f", req.Method, len(series), value)
	c.JSON(http.StatusOK, models.ForecastResponse{
		Method:   req.Method,
		Forecast: value,
		Order:    req.Order,
	})
}

// Backcast handles POST /api/v1/backcast.
func (h *ForecastHandler) Backcast(c *gin.Context) {
	var req models.BackcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, err := resolveSeries(c.Request.Context(), req.Source, req.APIKey)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	fn, err := forecastFunc(req.Method, req.Window, req.Order)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_METHOD", err.Error())
		return
	}

	rows, err := forecast.Backcast(series, fn, req.Window)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "BACKCAST_FAILED", err.Error())
		return
	}

	mae, rmse := errorStats(rows)
	log.Printf("[Backcast] method=%s window=%d rows=%d mae=%.4f", req.Method, req.Window, len(rows), mae)
	c.JSON(http.StatusOK, models.BackcastResponse{
		Method: req.Method,
		Window: req.Window,
		Rows:   rows,
		MAE:    mae,
		RMSE:   rmse,
	})
}

func forecastFunc(method string, window int, order *forecast.Order) (forecast.ForecastFunc, error) {
	switch method {
	case "moving_average":
		if window <= 0 {
			window = forecast.DefaultWindow
		}
		return func(s model.PriceSeries) (float64, error) {
			return forecast.MovingAverage(s, window)
		}, nil
	case "arima":
		return func(s model.PriceSeries) (float64, error) {
			return forecast.ARIMA(s, order)
		}, nil
	case "seasonal":
		return forecast.NextDaySeasonal, nil
	default:
		return nil, fmt.Errorf("unsupported forecast method: %q", method)
	}
}

func errorStats(rows []forecast.BackcastRow) (mae, rmse float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	for _, r := range rows {
		mae += math.Abs(r.Error)
		rmse += r.Error * r.Error
	}
	n := float64(len(rows))
	return mae / n, math.Sqrt(rmse / n)
}
