package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-econ/internal/model"
)

func baseScenario() ScenarioParams {
	return ScenarioParams{
		ConstructionYears:         1,
		OperationalYears:          1,
		DiscountRate:              0.05,
		OvernightCostMUSD:         100,
		AnnualOpCostMUSD:          10,
		ElectricityPriceUSDPerMWh: 20,
		Plant: model.PlantParams{
			CapacityMW:     1000,
			CapacityFactor: 1.0,
		},
	}
}

func TestRunScenarioSchedules(t *testing.T) {
	res, err := RunScenario(baseScenario())
	require.NoError(t, err)

	require.Len(t, res.Investment, 2)
	require.Len(t, res.OperatingCost, 2)
	require.Len(t, res.Energy, 2)
	require.Len(t, res.Revenue, 2)
	require.Len(t, res.NetCashFlow, 2)

	assert.Equal(t, []float64{100, 0}, res.Investment)
	assert.Equal(t, []float64{0, 10}, res.OperatingCost)

	// One 365-day operational year at full output.
	wantEnergy := 1000.0 * 365 * 24
	assert.Zero(t, res.Energy[0])
	assert.InDelta(t, wantEnergy, res.Energy[1], 1e-6)
	assert.InDelta(t, wantEnergy, res.FirstYearEnergyMWh, 1e-6)

	// Revenue reported in $M.
	wantRevenue := wantEnergy * 20 / 1e6
	assert.Zero(t, res.Revenue[0])
	assert.InDelta(t, wantRevenue, res.Revenue[1], 1e-6)

	assert.InDelta(t, -100, res.NetCashFlow[0], 1e-9)
	assert.InDelta(t, wantRevenue-10, res.NetCashFlow[1], 1e-6)
}

func TestRunScenarioMetrics(t *testing.T) {
	res, err := RunScenario(baseScenario())
	require.NoError(t, err)

	net1 := 1000.0*365*24*20/1e6 - 10 // 165.2 $M

	wantNPV := -100/1.05 + net1/(1.05*1.05)
	assert.InDelta(t, wantNPV, res.NPVMUSD, 1e-6)

	// LCOE in $/MWh: discounted $M costs over discounted MWh, scaled by 1e6.
	wantLCOE := (100/1.05 + 10/(1.05*1.05)) / (1000 * 365 * 24 / (1.05 * 1.05)) * 1e6
	assert.InDelta(t, wantLCOE, res.LCOEUSDPerMWh, 1e-6)

	// -100 + net1*x = 0, x = 1/(1+r).
	require.True(t, res.IRRFound)
	assert.InDelta(t, net1/100-1, res.IRR, 1e-9)

	require.True(t, res.PaybackReached)
	assert.Equal(t, 1, res.PaybackYear)

	// Operational profit excludes investment and fixed operating cost; fuel
	// is free here, so profit equals revenue.
	assert.InDelta(t, 1000.0*365*24*20, res.TotalProfitUSD, 1e-3)
}

func TestRunScenarioInflationAndDecommissioning(t *testing.T) {
	p := baseScenario()
	p.OperationalYears = 2
	p.OpCostInflation = 0.1
	p.DecommissioningCostMUSD = 5

	res, err := RunScenario(p)
	require.NoError(t, err)
	require.Len(t, res.OperatingCost, 3)

	assert.Zero(t, res.OperatingCost[0])
	assert.InDelta(t, 10.0, res.OperatingCost[1], 1e-9)
	assert.InDelta(t, 10*1.1+5, res.OperatingCost[2], 1e-9)
}

func TestRunScenarioDegradation(t *testing.T) {
	p := baseScenario()
	p.OperationalYears = 2
	p.EnergyDegradationPerYear = 0.5

	res, err := RunScenario(p)
	require.NoError(t, err)
	require.Len(t, res.Energy, 3)

	// The simulation clock starts in 2024, a leap year, so the calendar-year
	// buckets are 8784 and 8736 hours.
	assert.InDelta(t, 8784*1000.0, res.Energy[1], 1e-6)
	assert.InDelta(t, 8736*1000.0*0.5, res.Energy[2], 1e-6)
	assert.InDelta(t, 8784*1000.0, res.FirstYearEnergyMWh, 1e-6)
}

func TestRunScenarioMaintenanceReducesOutput(t *testing.T) {
	p := baseScenario()
	p.Plant.MaintenanceDays = 30

	res, err := RunScenario(p)
	require.NoError(t, err)

	// One 30-day outage within the single operational year; the scenario
	// default of an 18-month cadence allows no second window.
	assert.InDelta(t, 1000.0*(365-30)*24, res.Energy[1], 1e-6)
}

func TestRunScenarioValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScenarioParams)
	}{
		{"zero construction years", func(p *ScenarioParams) { p.ConstructionYears = 0 }},
		{"zero operational years", func(p *ScenarioParams) { p.OperationalYears = 0 }},
		{"negative overnight cost", func(p *ScenarioParams) { p.OvernightCostMUSD = -1 }},
		{"degradation out of range", func(p *ScenarioParams) { p.EnergyDegradationPerYear = 1 }},
		{"invalid plant", func(p *ScenarioParams) { p.Plant.CapacityMW = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseScenario()
			tt.mutate(&p)
			_, err := RunScenario(p)
			assert.Error(t, err)
		})
	}
}
