// Package simulate runs the hourly operation simulation and the multi-year
// scenario built on top of it.
package simulate

import (
	"fmt"
	"sort"
	"time"

	"plant-econ/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates operating the plant against an hourly price series.
//
// Outside maintenance outages the plant delivers CapacityMW * CapacityFactor
// each hour. Maintenance windows start at the first timestamp and recur every
// MaintenanceIntervalMonths (30-day months); within each window the first
// MaintenanceDays*24 rows produce no energy.
func (e *Engine) Run(series model.PriceSeries, plant model.PlantParams) (*Result, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no price data")
	}
	plant.Normalize()
	if err := plant.Validate(); err != nil {
		return nil, fmt.Errorf("plant params invalid: %w", err)
	}

	fuelCost := plant.EffectiveFuelCostPerMWh()
	rows := series.Sorted()

	energy := make([]float64, len(rows))
	hourly := plant.CapacityMW * plant.CapacityFactor
	for i := range energy {
		energy[i] = hourly
	}

	if plant.MaintenanceDays > 0 {
		applyMaintenance(rows, energy, plant)
	}

	ledger := make([]LedgerRow, 0, len(rows))
	res := &Result{}
	for i, pt := range rows {
		revenue := pt.Price * energy[i]
		cost := fuelCost * energy[i]
		profit := revenue - cost

		res.TotalEnergyMWh += energy[i]
		res.TotalRevenue += revenue
		res.TotalFuelCost += cost
		res.TotalProfit += profit

		ledger = append(ledger, LedgerRow{
			Index:     i,
			Timestamp: pt.Timestamp,
			Price:     pt.Price,
			EnergyMWh: energy[i],
			Revenue:   revenue,
			FuelCost:  cost,
			Profit:    profit,
			CumProfit: res.TotalProfit,
		})
	}
	res.Ledger = ledger
	return res, nil
}

// applyMaintenance zeroes energy for each recurring outage. rows must be
// sorted ascending.
func applyMaintenance(rows model.PriceSeries, energy []float64, plant model.PlantParams) {
	downtimeHours := plant.MaintenanceDays * 24
	windowLen := time.Duration(plant.MaintenanceDays) * 24 * time.Hour
	interval := time.Duration(plant.MaintenanceIntervalMonths) * 30 * 24 * time.Hour

	start := rows[0].Timestamp
	end := rows[len(rows)-1].Timestamp
	for !start.After(end) {
		windowEnd := start.Add(windowLen)
		first := sort.Search(len(rows), func(i int) bool {
			return !rows[i].Timestamp.Before(start)
		})
		zeroed := 0
		for i := first; i < len(rows) && zeroed < downtimeHours; i++ {
			if !rows[i].Timestamp.Before(windowEnd) {
				break
			}
			energy[i] = 0
			zeroed++
		}
		start = start.Add(interval)
	}
}
