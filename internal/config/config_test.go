package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
plant:
  name: Test Unit
  capacity_mw: 1000
  capacity_factor: 0.9
  fuel_cost_per_refueling: 180000000
  maintenance_days: 30
scenario:
  construction_period_years: 7
  operational_life_years: 60
  discount_rate: 0.07
  overnight_cost_usd_million: 6000
  annual_operation_cost_usd_million: 150
  op_cost_inflation: 0.02
  decommissioning_cost_usd_million: 1000
  electricity_price_usd_per_mwh: 85
  energy_degradation_per_year: 0.001
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", scenarioYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Unit", cfg.Plant.Name)
	assert.Equal(t, 1000.0, cfg.Plant.CapacityMW)
	assert.Equal(t, 7, cfg.Scenario.ConstructionPeriodYears)
	assert.Equal(t, 0.07, cfg.Scenario.DiscountRate)
}

func TestLoadPlantFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plant.yaml", `
plant:
  name: Base Unit
  capacity_mw: 1200
  capacity_factor: 0.85
  fuel_cost_per_mwh: 9
`)
	cfgPath := writeFile(t, dir, "scenario.yaml", `
plant_file: plant.yaml
plant:
  capacity_factor: 0.92
scenario:
  construction_period_years: 5
  operational_life_years: 40
  discount_rate: 0.05
  overnight_cost_usd_million: 5000
  annual_operation_cost_usd_million: 120
  electricity_price_usd_per_mwh: 70
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// plant.yaml provides the base, inline plant overrides it.
	assert.Equal(t, "Base Unit", cfg.Plant.Name)
	assert.Equal(t, 1200.0, cfg.Plant.CapacityMW)
	assert.Equal(t, 0.92, cfg.Plant.CapacityFactor)
	assert.Equal(t, 9.0, cfg.Plant.FuelCostPerMWh)
}

func TestLoadInvalidPlant(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", `
plant:
  capacity_mw: 0
scenario:
  construction_period_years: 1
  operational_life_years: 1
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plant config invalid")
}

func TestLoadUncheckedSkipsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", `
plant:
  capacity_mw: 0
`)
	cfg, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Plant.CapacityMW)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestToScenarioParams(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scenario.yaml", scenarioYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	p := cfg.ToScenarioParams()
	assert.Equal(t, 7, p.ConstructionYears)
	assert.Equal(t, 60, p.OperationalYears)
	assert.Equal(t, 6000.0, p.OvernightCostMUSD)
	assert.Equal(t, 85.0, p.ElectricityPriceUSDPerMWh)
	assert.Equal(t, 1000.0, p.Plant.CapacityMW)
	// Cycle defaults are the scenario runner's concern, not the loader's.
	assert.Equal(t, 0, p.Plant.MaintenanceIntervalMonths)
}

func TestMergePlant(t *testing.T) {
	base := PlantConfig{Name: "Base", CapacityMW: 1000, CapacityFactor: 0.9, FuelCostPerMWh: 8}
	override := PlantConfig{CapacityMW: 1200, MaintenanceDays: 30}

	merged := MergePlant(base, override)
	assert.Equal(t, "Base", merged.Name)
	assert.Equal(t, 1200.0, merged.CapacityMW)
	assert.Equal(t, 0.9, merged.CapacityFactor)
	assert.Equal(t, 8.0, merged.FuelCostPerMWh)
	assert.Equal(t, 30, merged.MaintenanceDays)
}
