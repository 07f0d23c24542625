package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"plant-econ/internal/model"
)

// Order is an ARIMA (p,d,q) specification.
type Order struct {
	P int `json:"p"`
	D int `json:"d"`
	Q int `json:"q"`
}

// DefaultOrder is the fallback used when every candidate in the grid search
// fails to fit.
var DefaultOrder = Order{P: 1, D: 0, Q: 0}

// sigma2Floor keeps the AIC finite on series the model fits exactly.
const sigma2Floor = 1e-12

// ArimaModel is a fitted ARIMA model. Coefficients are estimated by
// conditional least squares (Hannan-Rissanen for q > 0).
type ArimaModel struct {
	Order  Order
	Const  float64
	AR     []float64
	MA     []float64
	Sigma2 float64
	AIC    float64

	diffed []float64
	resid  []float64
	// lastLevels[l] is the final value of the l-times-differenced series,
	// used to integrate the forecast back to the original level.
	lastLevels []float64
}

// ARIMA forecasts one step ahead. With a nil order it grid-searches
// p in [0,3), d in [0,2), q in [0,3) excluding (0,0,0), keeps the lowest-AIC
// fit, and falls back to DefaultOrder when every candidate fails.
func ARIMA(series model.PriceSeries, order *Order) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("no price data available for forecasting")
	}
	values := series.Sorted().Prices()

	var m *ArimaModel
	var err error
	if order != nil {
		m, err = FitARIMA(values, *order)
	} else {
		m, err = fitBestAIC(values)
	}
	if err != nil {
		return 0, err
	}
	return m.Forecast(), nil
}

// NextHourARIMA is the ForecastFunc form of ARIMA with grid search.
func NextHourARIMA(series model.PriceSeries) (float64, error) {
	return ARIMA(series, nil)
}

// fitBestAIC tries every order in the grid; individual failures are skipped,
// not fatal.
func fitBestAIC(values []float64) (*ArimaModel, error) {
	var best *ArimaModel
	for p := 0; p < 3; p++ {
		for d := 0; d < 2; d++ {
			for q := 0; q < 3; q++ {
				if p == 0 && d == 0 && q == 0 {
					continue
				}
				m, err := FitARIMA(values, Order{P: p, D: d, Q: q})
				if err != nil {
					continue
				}
				if best == nil || m.AIC < best.AIC {
					best = m
				}
			}
		}
	}
	if best != nil {
		return best, nil
	}
	return FitARIMA(values, DefaultOrder)
}

// FitARIMA estimates an ARIMA(p,d,q) model on the given values.
func FitARIMA(values []float64, order Order) (*ArimaModel, error) {
	if order.P < 0 || order.D < 0 || order.Q < 0 {
		return nil, fmt.Errorf("invalid order (%d,%d,%d)", order.P, order.D, order.Q)
	}

	w := append([]float64(nil), values...)
	lastLevels := make([]float64, 0, order.D)
	for l := 0; l < order.D; l++ {
		if len(w) < 2 {
			return nil, fmt.Errorf("series too short to difference %d times", order.D)
		}
		lastLevels = append(lastLevels, w[len(w)-1])
		w = difference(w)
	}

	m := &ArimaModel{
		Order:      order,
		AR:         make([]float64, order.P),
		MA:         make([]float64, order.Q),
		diffed:     w,
		lastLevels: lastLevels,
	}

	mean, variance := meanVariance(w)
	if len(w) == 0 {
		return nil, fmt.Errorf("no observations after differencing")
	}

	// Degenerate but legitimate input: a series with no variance is fit
	// exactly by its mean.
	if variance < sigma2Floor {
		m.Const = mean
		m.resid = make([]float64, len(w))
		m.Sigma2 = sigma2Floor
		m.AIC = aic(len(w), sigma2Floor, order)
		return m, nil
	}

	if order.P == 0 && order.Q == 0 {
		m.Const = mean
		m.resid = make([]float64, len(w))
		sse := 0.0
		for i, v := range w {
			m.resid[i] = v - mean
			sse += m.resid[i] * m.resid[i]
		}
		m.Sigma2 = math.Max(sse/float64(len(w)), sigma2Floor)
		m.AIC = aic(len(w), m.Sigma2, order)
		return m, nil
	}

	resid := make([]float64, len(w))
	if order.Q > 0 {
		// Hannan-Rissanen stage one: residuals from a long autoregression.
		longOrder := order.P + order.Q
		e, err := longARResiduals(w, longOrder)
		if err != nil {
			return nil, err
		}
		resid = e
	}

	maxLag := order.P
	if order.Q > maxLag {
		maxLag = order.Q
	}
	start := maxLag
	if order.Q > 0 {
		// Skip rows whose lagged residuals are undefined.
		start += order.P + order.Q
	}
	nEff := len(w) - start
	nCols := 1 + order.P + order.Q
	if nEff <= nCols {
		return nil, fmt.Errorf("not enough observations for order (%d,%d,%d): have %d", order.P, order.D, order.Q, len(w))
	}

	y := make([]float64, 0, nEff)
	x := make([]float64, 0, nEff*nCols)
	for t := start; t < len(w); t++ {
		y = append(y, w[t])
		x = append(x, 1)
		for i := 1; i <= order.P; i++ {
			x = append(x, w[t-i])
		}
		for j := 1; j <= order.Q; j++ {
			x = append(x, resid[t-j])
		}
	}

	beta, err := solveOLS(y, x, nEff, nCols)
	if err != nil {
		return nil, err
	}
	m.Const = beta[0]
	copy(m.AR, beta[1:1+order.P])
	copy(m.MA, beta[1+order.P:])

	m.resid = make([]float64, len(w))
	sse := 0.0
	for t := start; t < len(w); t++ {
		fitted := m.Const
		for i := 1; i <= order.P; i++ {
			fitted += m.AR[i-1] * w[t-i]
		}
		for j := 1; j <= order.Q; j++ {
			fitted += m.MA[j-1] * resid[t-j]
		}
		m.resid[t] = w[t] - fitted
		sse += m.resid[t] * m.resid[t]
	}
	m.Sigma2 = math.Max(sse/float64(nEff), sigma2Floor)
	m.AIC = aic(nEff, m.Sigma2, order)
	return m, nil
}

// Forecast returns the one-step-ahead forecast on the original scale.
func (m *ArimaModel) Forecast() float64 {
	n := len(m.diffed)
	next := m.Const
	for i := 1; i <= m.Order.P; i++ {
		if n-i >= 0 {
			next += m.AR[i-1] * m.diffed[n-i]
		}
	}
	for j := 1; j <= m.Order.Q; j++ {
		if n-j >= 0 {
			next += m.MA[j-1] * m.resid[n-j]
		}
	}
	// Integrate the differences back, innermost level first.
	for l := len(m.lastLevels) - 1; l >= 0; l-- {
		next += m.lastLevels[l]
	}
	return next
}

func difference(values []float64) []float64 {
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}

func meanVariance(values []float64) (mean, variance float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, variance
}

func aic(n int, sigma2 float64, order Order) float64 {
	k := float64(order.P + order.Q + 1)
	return float64(n)*math.Log(sigma2) + 2*k
}

// longARResiduals fits an AR(order) by least squares and returns its
// residuals, zero where undefined.
func longARResiduals(w []float64, order int) ([]float64, error) {
	nEff := len(w) - order
	nCols := 1 + order
	if nEff <= nCols {
		return nil, fmt.Errorf("not enough observations for long AR(%d)", order)
	}

	y := make([]float64, 0, nEff)
	x := make([]float64, 0, nEff*nCols)
	for t := order; t < len(w); t++ {
		y = append(y, w[t])
		x = append(x, 1)
		for i := 1; i <= order; i++ {
			x = append(x, w[t-i])
		}
	}
	beta, err := solveOLS(y, x, nEff, nCols)
	if err != nil {
		return nil, err
	}

	resid := make([]float64, len(w))
	for t := order; t < len(w); t++ {
		fitted := beta[0]
		for i := 1; i <= order; i++ {
			fitted += beta[i] * w[t-i]
		}
		resid[t] = w[t] - fitted
	}
	return resid, nil
}

// solveOLS solves min ||Xb - y|| via QR. Rank-deficient designs surface as
// an error and count as a failed fit.
func solveOLS(y, x []float64, rows, cols int) ([]float64, error) {
	a := mat.NewDense(rows, cols, x)
	b := mat.NewVecDense(rows, y)

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, b); err != nil {
		return nil, fmt.Errorf("least squares solve: %w", err)
	}
	out := make([]float64, cols)
	for i := range out {
		out[i] = beta.AtVec(i)
	}
	return out, nil
}
