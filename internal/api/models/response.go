package models

import (
	"time"

	"plant-econ/internal/forecast"
)

// TimeWindow represents a time range.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SimulateResponse is the result of a simulation run.
type SimulateResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Summary SimulateSummary `json:"summary"`
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

type SimulateSummary struct {
	TotalProfit    float64    `json:"total_profit"`
	TotalRevenue   float64    `json:"total_revenue"`
	TotalFuelCost  float64    `json:"total_fuel_cost"`
	TotalEnergyMWh float64    `json:"total_energy_mwh"`
	Intervals      int        `json:"intervals"`
	Window         TimeWindow `json:"window"`
}

// LedgerRow is one hour of simulation detail.
type LedgerRow struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	EnergyMWh float64   `json:"energy_mwh"`
	Revenue   float64   `json:"revenue"`
	FuelCost  float64   `json:"fuel_cost"`
	Profit    float64   `json:"profit"`
	CumProfit float64   `json:"cum_profit"`
}

// EvaluateResponse carries the project metrics for a scenario.
type EvaluateResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Metrics ScenarioMetrics `json:"metrics"`
}

// ScenarioMetrics uses pointers for metrics that can be absent: a null IRR
// means no real solution exists, a null payback means it is never reached.
type ScenarioMetrics struct {
	LCOEUSDPerMWh      float64  `json:"lcoe_usd_per_mwh"`
	NPVMUSD            float64  `json:"npv_usd_million"`
	IRR                *float64 `json:"irr"`
	PaybackYear        *int     `json:"discounted_payback_year"`
	TotalProfitUSD     float64  `json:"simulated_total_profit_usd"`
	FirstYearEnergyMWh float64  `json:"first_year_energy_mwh"`
}

// ForecastResponse is a single-step forecast.
type ForecastResponse struct {
	Method   string          `json:"method"`
	Forecast float64         `json:"forecast"`
	Order    *forecast.Order `json:"order,omitempty"`
}

// BackcastResponse carries the per-step error rows plus aggregates.
type BackcastResponse struct {
	Method string                 `json:"method"`
	Window int                    `json:"window"`
	Rows   []forecast.BackcastRow `json:"rows"`
	MAE    float64                `json:"mae"`
	RMSE   float64                `json:"rmse"`
}
