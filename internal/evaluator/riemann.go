package evaluator

import (
	"context"
	"math"
)

// #region local-evaluator

// Local computes |zeta(0.5 + it)| in-process via the Riemann-Siegel Z
// function with the leading remainder term. Accuracy is bounded by float64
// (roughly 1e-2 near the small zeros, improving as t grows); the arbitrary
// precision path lives on the remote service. Useful for running the tools
// without the service and as a sanity cross-check.
type Local struct{}

var _ Evaluator = Local{}

// minPosition is the floor of the Riemann-Siegel main sum's valid range.
const minPosition = 2 * math.Pi

// Evaluate returns |Z(t)| = |zeta(0.5 + it)|. The precision argument is
// validated (the service contract requires precision >= 1) but the
// computation itself runs at float64 precision regardless.
func (Local) Evaluate(ctx context.Context, position float64, precision int) (float64, error) {
	if precision < 1 {
		return 0, &EvalError{
			Position:     position,
			Reason:       "precision must be >= 1",
			NonRetriable: true,
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, &EvalError{Position: position, Reason: err.Error()}
	}
	if position <= minPosition {
		return 0, &EvalError{
			Position: position,
			Reason:   "position below Riemann-Siegel range",
		}
	}
	return math.Abs(riemannSiegelZ(position)), nil
}

// #endregion local-evaluator

// #region riemann-siegel

// riemannSiegelZ evaluates Z(t) = 2*sum_{n<=N} cos(theta(t) - t*ln n)/sqrt(n)
// plus the first remainder term, N = floor(sqrt(t/2pi)).
func riemannSiegelZ(t float64) float64 {
	a := math.Sqrt(t / (2 * math.Pi))
	n := math.Floor(a)
	th := rsTheta(t)

	var sum float64
	for k := 1.0; k <= n; k++ {
		sum += math.Cos(th-t*math.Log(k)) / math.Sqrt(k)
	}
	sum *= 2

	// Leading correction term (C0), Gabcke's psi.
	p := a - n
	psi := math.Cos(2*math.Pi*(p*p-p-1.0/16)) / math.Cos(2*math.Pi*p)
	sign := 1.0
	if math.Mod(n, 2) == 0 {
		sign = -1.0
	}
	return sum + sign*math.Pow(t/(2*math.Pi), -0.25)*psi
}

// rsTheta is the asymptotic expansion of the Riemann-Siegel theta function.
func rsTheta(t float64) float64 {
	return t/2*math.Log(t/(2*math.Pi)) - t/2 - math.Pi/8 +
		1/(48*t) + 7/(5760*t*t*t)
}

// #endregion riemann-siegel
