package simulate

import "time"

// LedgerRow is one hour of simulated plant operation.
// This is the primary artifact for "what happened" in a simulation.
type LedgerRow struct {
	Index int

	Timestamp time.Time

	// Price is the market price in $/MWh for this hour.
	Price float64

	// EnergyMWh is the energy delivered; zero during maintenance outages.
	EnergyMWh float64

	Revenue   float64
	FuelCost  float64
	Profit    float64
	CumProfit float64
}

type Result struct {
	Ledger []LedgerRow

	TotalEnergyMWh float64
	TotalRevenue   float64
	TotalFuelCost  float64
	TotalProfit    float64
}
