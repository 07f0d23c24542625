package main

import (
	"fmt"
	"os"

	"plant-econ/internal/model"
	"plant-econ/internal/report"
	"plant-econ/internal/simulate"
)

// Runs the bundled example scenario: a 1000 MW plant with a 7-year build and
// a 60-year operating life. Useful as a smoke test and as sample output.
func main() {
	params := simulate.ScenarioParams{
		ConstructionYears:         7,
		OperationalYears:          60,
		DiscountRate:              0.07,
		OvernightCostMUSD:         6000,
		AnnualOpCostMUSD:          150,
		OpCostInflation:           0.02,
		DecommissioningCostMUSD:   1000,
		ResidualValueMUSD:         0,
		ElectricityPriceUSDPerMWh: 85,
		EnergyDegradationPerYear:  0.001,
		Plant: model.PlantParams{
			Name:                 "Example 1000 MW unit",
			CapacityMW:           1000,
			CapacityFactor:       0.9,
			FuelCostPerRefueling: 180e6,
			RefuelingCycleMonths: 18,
			MaintenanceDays:      30,
		},
	}

	fmt.Println("--- Financial Model for a Hypothetical Nuclear Power Plant ---")
	res, err := simulate.RunScenario(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	report.RenderScenario(os.Stdout, params, res)
	report.RenderSchedules(os.Stdout, res)
}
