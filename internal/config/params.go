package config

import (
	"encoding/json"
	"fmt"
	"os"

	"plant-econ/internal/model"
	"plant-econ/internal/simulate"
)

// ParamsJSON is the flat key-value JSON parameter document, kept compatible
// with the historical example_plant.json layout.
type ParamsJSON struct {
	ConstructionPeriodYears   int     `json:"construction_period_years"`
	OperationalLifeYears      int     `json:"operational_life_years"`
	DiscountRate              float64 `json:"discount_rate"`
	OvernightCostMUSD         float64 `json:"overnight_cost_usd_million"`
	AnnualOperationCostMUSD   float64 `json:"annual_operation_cost_usd_million"`
	OpCostInflation           float64 `json:"op_cost_inflation"`
	DecommissioningCostMUSD   float64 `json:"decommissioning_cost_usd_million"`
	ResidualValueMUSD         float64 `json:"residual_value_usd_million"`
	PlantCapacityMW           float64 `json:"plant_capacity_mw"`
	CapacityFactor            float64 `json:"capacity_factor"`
	ElectricityPriceUSDPerMWh float64 `json:"electricity_price_usd_per_mwh"`
	FuelCostPerMWh            float64 `json:"fuel_cost_per_mwh"`
	FuelCostPerRefueling      float64 `json:"fuel_cost_per_refueling"`
	RefuelingCycleMonths      int     `json:"refueling_cycle_months"`
	MaintenanceDays           int     `json:"maintenance_days"`
	EnergyDegradationPerYear  float64 `json:"energy_degradation_per_year"`
}

// LoadParamsJSON reads a flat JSON parameter file and validates the resulting
// scenario.
func LoadParamsJSON(path string) (simulate.ScenarioParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return simulate.ScenarioParams{}, err
	}
	var p ParamsJSON
	if err := json.Unmarshal(raw, &p); err != nil {
		return simulate.ScenarioParams{}, fmt.Errorf("invalid parameter file %s: %w", path, err)
	}
	params := p.ToScenarioParams()
	if err := params.Validate(); err != nil {
		return simulate.ScenarioParams{}, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return params, nil
}

func (p ParamsJSON) ToScenarioParams() simulate.ScenarioParams {
	plant := model.PlantParams{
		CapacityMW:           p.PlantCapacityMW,
		CapacityFactor:       p.CapacityFactor,
		FuelCostPerMWh:       p.FuelCostPerMWh,
		FuelCostPerRefueling: p.FuelCostPerRefueling,
		RefuelingCycleMonths: p.RefuelingCycleMonths,
		MaintenanceDays:      p.MaintenanceDays,
	}
	return simulate.ScenarioParams{
		ConstructionYears:         p.ConstructionPeriodYears,
		OperationalYears:          p.OperationalLifeYears,
		DiscountRate:              p.DiscountRate,
		OvernightCostMUSD:         p.OvernightCostMUSD,
		AnnualOpCostMUSD:          p.AnnualOperationCostMUSD,
		OpCostInflation:           p.OpCostInflation,
		DecommissioningCostMUSD:   p.DecommissioningCostMUSD,
		ResidualValueMUSD:         p.ResidualValueMUSD,
		ElectricityPriceUSDPerMWh: p.ElectricityPriceUSDPerMWh,
		EnergyDegradationPerYear:  p.EnergyDegradationPerYear,
		Plant:                     plant,
	}
}
