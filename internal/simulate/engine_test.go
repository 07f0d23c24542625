package simulate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-econ/internal/model"
)

func flatSeries(hours int, price float64) model.PriceSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(model.PriceSeries, hours)
	for i := range series {
		series[i] = model.PricePoint{Timestamp: base.Add(time.Duration(i) * time.Hour), Price: price}
	}
	return series
}

func TestRunEmptySeries(t *testing.T) {
	_, err := New().Run(nil, model.PlantParams{CapacityMW: 1000, CapacityFactor: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no price data")
}

func TestRunInvalidPlant(t *testing.T) {
	_, err := New().Run(flatSeries(24, 50), model.PlantParams{CapacityMW: -1})
	assert.Error(t, err)
}

func TestRunNoMaintenance(t *testing.T) {
	plant := model.PlantParams{
		CapacityMW:     1000,
		CapacityFactor: 0.9,
		FuelCostPerMWh: 10,
	}

	res, err := New().Run(flatSeries(48, 50), plant)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 48)

	hourly := 1000 * 0.9
	assert.InDelta(t, 48*hourly, res.TotalEnergyMWh, 1e-6)
	assert.InDelta(t, 48*hourly*50, res.TotalRevenue, 1e-6)
	assert.InDelta(t, 48*hourly*10, res.TotalFuelCost, 1e-6)
	assert.InDelta(t, 48*hourly*(50-10), res.TotalProfit, 1e-6)

	last := res.Ledger[47]
	assert.InDelta(t, res.TotalProfit, last.CumProfit, 1e-6)
	assert.Equal(t, 47, last.Index)
}

func TestRunMaintenanceZeroesWindow(t *testing.T) {
	plant := model.PlantParams{
		CapacityMW:      1000,
		CapacityFactor:  1.0,
		FuelCostPerMWh:  10,
		MaintenanceDays: 1,
	}

	res, err := New().Run(flatSeries(48, 50), plant)
	require.NoError(t, err)

	// One outage at the start of the series; the default 12-month interval
	// puts the next window beyond the horizon.
	for i := 0; i < 24; i++ {
		assert.Zero(t, res.Ledger[i].EnergyMWh, "hour %d", i)
		assert.Zero(t, res.Ledger[i].Profit, "hour %d", i)
	}
	for i := 24; i < 48; i++ {
		assert.InDelta(t, 1000.0, res.Ledger[i].EnergyMWh, 1e-9, "hour %d", i)
	}
	assert.InDelta(t, (50-10)*1000*24, res.TotalProfit, 1e-6)
}

func TestRunMaintenanceRecurs(t *testing.T) {
	plant := model.PlantParams{
		CapacityMW:                1000,
		CapacityFactor:            1.0,
		MaintenanceDays:           1,
		MaintenanceIntervalMonths: 1,
	}

	// 31 days of hours: the one-month (30-day) interval yields a second
	// outage day starting at hour 720.
	res, err := New().Run(flatSeries(31*24, 50), plant)
	require.NoError(t, err)

	assert.Zero(t, res.Ledger[0].EnergyMWh)
	assert.Zero(t, res.Ledger[23].EnergyMWh)
	assert.NotZero(t, res.Ledger[24].EnergyMWh)
	assert.Zero(t, res.Ledger[720].EnergyMWh)
	assert.Zero(t, res.Ledger[743].EnergyMWh)
	assert.NotZero(t, res.Ledger[719].EnergyMWh)

	assert.InDelta(t, float64((31*24-48)*1000), res.TotalEnergyMWh, 1e-6)
}

func TestRunSortsInput(t *testing.T) {
	series := flatSeries(24, 50)
	series[0], series[23] = series[23], series[0]

	plant := model.PlantParams{CapacityMW: 500, CapacityFactor: 1.0}
	res, err := New().Run(series, plant)
	require.NoError(t, err)

	for i := 1; i < len(res.Ledger); i++ {
		assert.True(t, res.Ledger[i].Timestamp.After(res.Ledger[i-1].Timestamp))
	}
}

func TestRunRefuelingCostEquivalence(t *testing.T) {
	series := flatSeries(100, 60)

	perMWh := model.PlantParams{
		CapacityMW:     1000,
		CapacityFactor: 0.9,
		FuelCostPerMWh: 10,
	}
	// A per-refueling total that amortizes back to exactly 10 $/MWh.
	perRefueling := model.PlantParams{
		CapacityMW:           1000,
		CapacityFactor:       0.9,
		FuelCostPerRefueling: 10 * 18 * 30 * 24 * 1000 * 0.9,
		RefuelingCycleMonths: 18,
	}

	a, err := New().Run(series, perMWh)
	require.NoError(t, err)
	b, err := New().Run(series, perRefueling)
	require.NoError(t, err)

	assert.InDelta(t, a.TotalProfit, b.TotalProfit, 1e-6)
	assert.InDelta(t, a.TotalFuelCost, b.TotalFuelCost, 1e-6)
}
