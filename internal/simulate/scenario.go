package simulate

import (
	"errors"
	"fmt"
	"time"

	"plant-econ/internal/finance"
	"plant-econ/internal/model"
)

// Monetary schedule values are in USD millions; energy in MWh.
//
// The operational period is simulated hour by hour against a flat electricity
// price, then aggregated by calendar year. The simulation clock starts at
// scenarioEpoch regardless of wall time so results are reproducible.
var scenarioEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ScenarioParams describes a full project lifecycle: a construction period
// with investment only, followed by an operational period.
type ScenarioParams struct {
	ConstructionYears int
	OperationalYears  int
	DiscountRate      float64

	OvernightCostMUSD       float64
	AnnualOpCostMUSD        float64
	OpCostInflation         float64
	DecommissioningCostMUSD float64
	ResidualValueMUSD       float64

	ElectricityPriceUSDPerMWh float64

	// EnergyDegradationPerYear is the multiplicative yearly output loss
	// (0.001 = 0.1%/year). Zero holds output flat.
	EnergyDegradationPerYear float64

	Plant model.PlantParams
}

func (p ScenarioParams) Validate() error {
	if p.ConstructionYears <= 0 {
		return errors.New("ConstructionYears must be > 0")
	}
	if p.OperationalYears <= 0 {
		return errors.New("OperationalYears must be > 0")
	}
	if p.OvernightCostMUSD < 0 || p.AnnualOpCostMUSD < 0 || p.DecommissioningCostMUSD < 0 {
		return errors.New("cost parameters must be >= 0")
	}
	if p.EnergyDegradationPerYear < 0 || p.EnergyDegradationPerYear >= 1 {
		return errors.New("EnergyDegradationPerYear must be in [0, 1)")
	}
	plant := scenarioPlant(p.Plant)
	plant.Normalize()
	return plant.Validate()
}

// ScenarioResult holds the year-indexed schedules and the derived metrics.
type ScenarioResult struct {
	Investment    []float64 // $M per year
	OperatingCost []float64 // $M per year, decommissioning folded into the last
	Energy        []float64 // MWh per year
	Revenue       []float64 // $M per year
	NetCashFlow   []float64 // $M per year

	LCOEUSDPerMWh float64 // $/MWh
	NPVMUSD       float64 // $M

	IRR      float64
	IRRFound bool

	PaybackYear    int
	PaybackReached bool

	// TotalProfitUSD is the simulated operational profit in plain dollars,
	// before discounting.
	TotalProfitUSD     float64
	FirstYearEnergyMWh float64
}

// RunScenario builds the lifecycle schedules, simulates the operational
// period hour by hour and feeds the discounting primitives.
func RunScenario(p ScenarioParams) (*ScenarioResult, error) {
	plant, err := model.NewPlant(scenarioPlant(p.Plant))
	if err != nil {
		return nil, err
	}
	p.Plant = plant
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("scenario params invalid: %w", err)
	}

	totalYears := p.ConstructionYears + p.OperationalYears

	investment := make([]float64, totalYears)
	annualInvestment := p.OvernightCostMUSD / float64(p.ConstructionYears)
	for t := 0; t < p.ConstructionYears; t++ {
		investment[t] = annualInvestment
	}

	opCost := make([]float64, totalYears)
	current := p.AnnualOpCostMUSD
	for t := p.ConstructionYears; t < totalYears; t++ {
		opCost[t] = current
		current *= 1 + p.OpCostInflation
	}
	opCost[totalYears-1] += p.DecommissioningCostMUSD

	series := flatPriceSeries(p.OperationalYears, p.ElectricityPriceUSDPerMWh)
	res, err := New().Run(series, p.Plant)
	if err != nil {
		return nil, err
	}

	energyByYear, revenueByYear := aggregateByYear(res.Ledger)

	energy := make([]float64, p.ConstructionYears, totalYears)
	revenue := make([]float64, p.ConstructionYears, totalYears)
	degrade := 1.0
	for i := range energyByYear {
		energy = append(energy, energyByYear[i]*degrade)
		revenue = append(revenue, revenueByYear[i]*degrade/1e6)
		degrade *= 1 - p.EnergyDegradationPerYear
	}

	netCashFlow := make([]float64, len(revenue))
	for t := range netCashFlow {
		netCashFlow[t] = revenue[t] - (investment[t] + opCost[t])
	}

	lcoe, err := finance.LCOE(investment, opCost, energy, p.DiscountRate, p.ResidualValueMUSD)
	if err != nil {
		return nil, err
	}

	out := &ScenarioResult{
		Investment:     investment,
		OperatingCost:  opCost,
		Energy:         energy,
		Revenue:        revenue,
		NetCashFlow:    netCashFlow,
		LCOEUSDPerMWh:  lcoe * 1e6,
		NPVMUSD:        finance.NPV(netCashFlow, p.DiscountRate),
		TotalProfitUSD: res.TotalProfit,
	}
	out.IRR, out.IRRFound = finance.IRR(netCashFlow)
	out.PaybackYear, out.PaybackReached = finance.DiscountedPayback(netCashFlow, p.DiscountRate)
	if len(energyByYear) > 0 {
		out.FirstYearEnergyMWh = energyByYear[0]
	}
	return out, nil
}

// scenarioPlant applies the scenario-level default of an 18-month outage
// cadence (one outage per refueling cycle) when the plant does not set one.
func scenarioPlant(plant model.PlantParams) model.PlantParams {
	if plant.MaintenanceIntervalMonths == 0 {
		plant.MaintenanceIntervalMonths = 18
	}
	return plant
}

func flatPriceSeries(years int, price float64) model.PriceSeries {
	hours := years * 365 * 24
	series := make(model.PriceSeries, hours)
	for i := 0; i < hours; i++ {
		series[i] = model.PricePoint{
			Timestamp: scenarioEpoch.Add(time.Duration(i) * time.Hour),
			Price:     price,
		}
	}
	return series
}

// aggregateByYear sums energy and revenue per calendar year, in
// chronological order. The ledger is already sorted.
func aggregateByYear(ledger []LedgerRow) (energy, revenue []float64) {
	lastYear := 0
	for i, row := range ledger {
		year := row.Timestamp.Year()
		if i == 0 || year != lastYear {
			energy = append(energy, 0)
			revenue = append(revenue, 0)
			lastYear = year
		}
		energy[len(energy)-1] += row.EnergyMWh
		revenue[len(revenue)-1] += row.Revenue
	}
	return energy, revenue
}
