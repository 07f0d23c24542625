// Package finance implements the discounting primitives of the project model:
// NPV, LCOE, IRR and discounted payback.
package finance

import (
	"fmt"
	"math"
)

// NPV returns the net present value of a cash-flow schedule.
// Cash flows are per-period net values with outflows negative; period t
// (zero-indexed) is discounted by (1+rate)^(t+1), i.e. the first flow lands
// at the end of period 1. No guard against rate <= -1; that is on the caller.
func NPV(cashflows []float64, rate float64) float64 {
	npv := 0.0
	for t, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(t+1))
	}
	return npv
}

// LCOE returns the levelized cost of energy: discounted costs (investment +
// operating, minus the discounted residual value) per unit of discounted
// energy. The three schedules must cover the same analysis horizon.
// Returns +Inf when the discounted energy sum is zero.
func LCOE(invest, opex, energy []float64, rate, residual float64) (float64, error) {
	if len(invest) != len(opex) || len(invest) != len(energy) {
		return 0, fmt.Errorf("schedule length mismatch: invest=%d opex=%d energy=%d",
			len(invest), len(opex), len(energy))
	}
	n := len(invest)

	discountedCosts := 0.0
	discountedEnergy := 0.0
	for t := 0; t < n; t++ {
		factor := math.Pow(1+rate, float64(t+1))
		discountedCosts += (invest[t] + opex[t]) / factor
		discountedEnergy += energy[t] / factor
	}
	discountedCosts -= residual / math.Pow(1+rate, float64(n))

	if discountedEnergy == 0 {
		return math.Inf(1), nil
	}
	return discountedCosts / discountedEnergy, nil
}

// DiscountedPayback returns the first period index t (zero-indexed) at which
// the cumulative discounted cash flow reaches zero. Discounting here starts
// at exponent 0 so the initial outlay is taken at face value. The second
// return is false when payback is never reached.
func DiscountedPayback(cashflows []float64, rate float64) (int, bool) {
	cumulative := 0.0
	for t, cf := range cashflows {
		cumulative += cf / math.Pow(1+rate, float64(t))
		if cumulative >= 0 {
			return t, true
		}
	}
	return 0, false
}
