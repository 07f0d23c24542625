// Package report renders scenario results for the console.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"

	"plant-econ/internal/simulate"
)

// RenderScenario prints the project parameters and the model results.
func RenderScenario(w io.Writer, params simulate.ScenarioParams, res *simulate.ScenarioResult) {
	totalYears := params.ConstructionYears + params.OperationalYears

	fmt.Fprintln(w, "\nProject Parameters:")
	fmt.Fprintf(w, "  - Discount Rate: %.1f%%\n", params.DiscountRate*100)
	fmt.Fprintf(w, "  - Total Lifecycle: %d years (%d construction + %d operation)\n",
		totalYears, params.ConstructionYears, params.OperationalYears)
	fmt.Fprintf(w, "  - Total Investment: $%.0f Million\n", params.OvernightCostMUSD)
	if res.FirstYearEnergyMWh > 0 {
		fmt.Fprintf(w, "  - First Year Energy Output: %.0f MWh\n", res.FirstYearEnergyMWh)
	}

	fmt.Fprintln(w, "\n--- Model Results ---")
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value", "Unit")
	table.Append("LCOE", fmtMoney(res.LCOEUSDPerMWh), "$/MWh")
	table.Append("NPV", fmtMoney(res.NPVMUSD), "$M")
	if res.IRRFound {
		table.Append("IRR", fmt.Sprintf("%.2f%%", res.IRR*100), "")
	} else {
		table.Append("IRR", "not found", "")
	}
	if res.PaybackReached {
		table.Append("Discounted Payback", fmt.Sprintf("%d", res.PaybackYear), "years")
	} else {
		table.Append("Discounted Payback", "not reached", "")
	}
	table.Append("Simulated Profit", fmtMoney(res.TotalProfitUSD), "$")
	table.Render()

	if res.NPVMUSD > 0 {
		fmt.Fprintln(w, "The project is financially viable under these assumptions, as the NPV is positive.")
	} else {
		fmt.Fprintln(w, "The project is not financially viable under these assumptions, as the NPV is negative.")
	}
}

// RenderSchedules prints the year-indexed schedules behind the metrics.
func RenderSchedules(w io.Writer, res *simulate.ScenarioResult) {
	fmt.Fprintln(w, "\n--- Yearly Schedules ($M, MWh) ---")
	table := tablewriter.NewWriter(w)
	table.Header("Year", "Investment", "Op Cost", "Energy MWh", "Revenue", "Net Cash Flow")
	for t := range res.NetCashFlow {
		table.Append(
			fmt.Sprintf("%d", t+1),
			fmt.Sprintf("%.2f", res.Investment[t]),
			fmt.Sprintf("%.2f", res.OperatingCost[t]),
			fmt.Sprintf("%.0f", res.Energy[t]),
			fmt.Sprintf("%.2f", res.Revenue[t]),
			fmt.Sprintf("%.2f", res.NetCashFlow[t]),
		)
	}
	table.Render()
}

func fmtMoney(v float64) string {
	if math.IsInf(v, 1) {
		return "INF"
	}
	return fmt.Sprintf("%.2f", v)
}
