package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"plant-econ/internal/model"
	"plant-econ/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load plant parameters from a separate YAML (e.g. examples/plants/*.yaml).
	// If both PlantFile and Plant are provided, Plant overrides PlantFile.
	PlantFile string         `yaml:"plant_file"`
	Plant     PlantConfig    `yaml:"plant"`
	Scenario  ScenarioConfig `yaml:"scenario"`
}

type PlantConfig struct {
	Name                      string  `yaml:"name"`
	CapacityMW                float64 `yaml:"capacity_mw"`
	CapacityFactor            float64 `yaml:"capacity_factor"`
	FuelCostPerMWh            float64 `yaml:"fuel_cost_per_mwh"`
	FuelCostPerRefueling      float64 `yaml:"fuel_cost_per_refueling"`
	RefuelingCycleMonths      int     `yaml:"refueling_cycle_months"`
	MaintenanceDays           int     `yaml:"maintenance_days"`
	MaintenanceIntervalMonths int     `yaml:"maintenance_interval_months"`
}

type ScenarioConfig struct {
	ConstructionPeriodYears   int     `yaml:"construction_period_years"`
	OperationalLifeYears      int     `yaml:"operational_life_years"`
	DiscountRate              float64 `yaml:"discount_rate"`
	OvernightCostMUSD         float64 `yaml:"overnight_cost_usd_million"`
	AnnualOperationCostMUSD   float64 `yaml:"annual_operation_cost_usd_million"`
	OpCostInflation           float64 `yaml:"op_cost_inflation"`
	DecommissioningCostMUSD   float64 `yaml:"decommissioning_cost_usd_million"`
	ResidualValueMUSD         float64 `yaml:"residual_value_usd_million"`
	ElectricityPriceUSDPerMWh float64 `yaml:"electricity_price_usd_per_mwh"`
	EnergyDegradationPerYear  float64 `yaml:"energy_degradation_per_year"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If plant_file is set, load it and merge in any explicit overrides from c.Plant.
	if c.PlantFile != "" {
		plantPath := c.PlantFile
		if !filepath.IsAbs(plantPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), plantPath)
			if _, err := os.Stat(cand); err == nil {
				plantPath = cand
			}
		}
		loaded, err := loadPlantFile(plantPath)
		if err != nil {
			return nil, err
		}
		c.Plant = MergePlant(loaded, c.Plant)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := model.NewPlant(c.Plant.ToModelParams()); err != nil {
		return fmt.Errorf("plant config invalid: %w", err)
	}
	if err := c.ToScenarioParams().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
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

// ToScenarioParams builds scenario params. The plant is passed through
// unnormalized so the scenario runner can apply its own outage-cadence
// default.
func (c *Config) ToScenarioParams() simulate.ScenarioParams {
	plant := c.Plant.ToModelParams()
	return simulate.ScenarioParams{
		ConstructionYears:         c.Scenario.ConstructionPeriodYears,
		OperationalYears:          c.Scenario.OperationalLifeYears,
		DiscountRate:              c.Scenario.DiscountRate,
		OvernightCostMUSD:         c.Scenario.OvernightCostMUSD,
		AnnualOpCostMUSD:          c.Scenario.AnnualOperationCostMUSD,
		OpCostInflation:           c.Scenario.OpCostInflation,
		DecommissioningCostMUSD:   c.Scenario.DecommissioningCostMUSD,
		ResidualValueMUSD:         c.Scenario.ResidualValueMUSD,
		ElectricityPriceUSDPerMWh: c.Scenario.ElectricityPriceUSDPerMWh,
		EnergyDegradationPerYear:  c.Scenario.EnergyDegradationPerYear,
		Plant:                     plant,
	}
}

type plantFileWrapper struct {
	Plant PlantConfig `yaml:"plant"`
}

func loadPlantFile(path string) (PlantConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlantConfig{}, err
	}
	var w plantFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PlantConfig{}, err
	}
	return w.Plant, nil
}

// MergePlant overlays non-zero fields from override onto base.
// This is used when loading a plant file and then applying overrides from the
// config or a request.
func MergePlant(base, override PlantConfig) PlantConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityMW != 0 {
		out.CapacityMW = override.CapacityMW
	}
	if override.CapacityFactor != 0 {
		out.CapacityFactor = override.CapacityFactor
	}
	if override.FuelCostPerMWh != 0 {
		out.FuelCostPerMWh = override.FuelCostPerMWh
	}
	if override.FuelCostPerRefueling != 0 {
		out.FuelCostPerRefueling = override.FuelCostPerRefueling
	}
	if override.RefuelingCycleMonths != 0 {
		out.RefuelingCycleMonths = override.RefuelingCycleMonths
	}
	if override.MaintenanceDays != 0 {
		out.MaintenanceDays = override.MaintenanceDays
	}
	if override.MaintenanceIntervalMonths != 0 {
		out.MaintenanceIntervalMonths = override.MaintenanceIntervalMonths
	}
	return out
}
