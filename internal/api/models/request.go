package models

import (
	"plant-econ/internal/forecast"
	"plant-econ/internal/model"
)

// PriceSourceConfig defines where the price series comes from.
type PriceSourceConfig struct {
	Type string `json:"type" binding:"required"` // "eia", "file" or "inline"

	// EIA source.
	Region    string `json:"region,omitempty"`
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// File source: a JSON flat file previously written by fetch-prices.
	Path string `json:"path,omitempty"`

	// Inline source.
	Prices model.PriceSeries `json:"prices,omitempty"`
}

// PlantConfig defines plant parameters in request bodies.
type PlantConfig struct {
	Name                      string  `json:"name,omitempty"`
	CapacityMW                float64 `json:"capacity_mw"`
	CapacityFactor            float64 `json:"capacity_factor"`
	FuelCostPerMWh            float64 `json:"fuel_cost_per_mwh,omitempty"`
	FuelCostPerRefueling      float64 `json:"fuel_cost_per_refueling,omitempty"`
	RefuelingCycleMonths      int     `json:"refueling_cycle_months,omitempty"`
	MaintenanceDays           int     `json:"maintenance_days,omitempty"`
	MaintenanceIntervalMonths int     `json:"maintenance_interval_months,omitempty"`
}

func (p PlantConfig) ToModelParams() model.PlantParams {
	return model.PlantParams{
		Name:                      p.Name,
		CapacityMW:                p.CapacityMW,
		CapacityFactor:            p.CapacityFactor,
		FuelCostPerMWh:            p.FuelCostPerMWh,
		FuelCostPerRefueling:      p.FuelCostPerRefueling,
		RefuelingCycleMonths:      p.RefuelingCycleMonths,
		MaintenanceDays:           p.MaintenanceDays,
		MaintenanceIntervalMonths: p.MaintenanceIntervalMonths,
	}
}

// SimulateRequest runs the operation simulator over a price series.
type SimulateRequest struct {
	APIKey  string            `json:"api_key,omitempty"` // required for the EIA source
	Source  PriceSourceConfig `json:"source" binding:"required"`
	Plant   PlantConfig       `json:"plant" binding:"required"`
	Options SimulateOptions   `json:"options,omitempty"`
}

type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"`
}

// ForecastRequest produces a single-step forecast.
type ForecastRequest struct {
	APIKey string            `json:"api_key,omitempty"`
	Source PriceSourceConfig `json:"source" binding:"required"`
	Method string            `json:"method" binding:"required"` // "moving_average", "arima", "seasonal"
	Window int               `json:"window,omitempty"`          // moving average only
	Order  *forecast.Order   `json:"order,omitempty"`           // arima only; nil grid-searches
}

// BackcastRequest walks a forecast method over history.
type BackcastRequest struct {
	APIKey string            `json:"api_key,omitempty"`
	Source PriceSourceConfig `json:"source" binding:"required"`
	Method string            `json:"method" binding:"required"`
	Window int               `json:"window" binding:"required"`
	Order  *forecast.Order   `json:"order,omitempty"`
}
