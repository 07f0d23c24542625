package finance

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IRR returns the internal rate of return: the rate r at which NPV(cashflows, r)
// is zero. Substituting x = 1/(1+r) turns the NPV into the polynomial
// sum(cf_t * x^t); its roots are the eigenvalues of the companion matrix.
// Only real positive roots correspond to usable rates; among those the rate
// closest to zero is returned. The second return is false when no real
// solution exists.
func IRR(cashflows []float64) (float64, bool) {
	// Trim trailing zero coefficients so the leading coefficient is nonzero.
	n := len(cashflows)
	for n > 0 && cashflows[n-1] == 0 {
		n--
	}
	if n < 2 {
		return 0, false
	}
	deg := n - 1
	lead := cashflows[deg]

	// Companion matrix: subdiagonal ones, last column -c_i/lead.
	comp := mat.NewDense(deg, deg, nil)
	for i := 1; i < deg; i++ {
		comp.Set(i, i-1, 1)
	}
	for i := 0; i < deg; i++ {
		comp.Set(i, deg-1, -cashflows[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		return 0, false
	}
	roots := eig.Values(nil)

	const imagTol = 1e-9
	best := math.NaN()
	for _, root := range roots {
		if math.Abs(imag(root)) > imagTol {
			continue
		}
		x := real(root)
		if x <= 0 {
			continue
		}
		rate := 1/x - 1
		if math.IsNaN(best) || math.Abs(rate) < math.Abs(best) {
			best = rate
		}
	}
	if math.IsNaN(best) {
		return 0, false
	}
	return best, true
}
