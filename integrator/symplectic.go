package integrator

import "github.com/steeltroops-ai/gravitas"

// symplecticIterations is the fixed-point iteration count for the implicit
// midpoint solve. The spec pins this at 2; raising it improves the
// midpoint estimate at the cost of extra metric evaluations per step.
const symplecticIterations = 2

// StepSymplectic advances state by one 2nd-order implicit-midpoint step of
// size h, in place. The implicit midpoint equation
//
//	y_mid = 1/2 (y + y + h*f(y_mid))
//
// is solved by fixed-point iteration rather than Newton's method, trading
// a fixed iteration count for simplicity; it exactly conserves quadratic
// invariants up to the residual of that iteration.
func StepSymplectic(state *gravitas.GeodesicState, metric gravitas.Metric, h float64) {
	sMid := *state
	for i := 0; i < symplecticIterations; i++ {
		d := StateDerivative(sMid, metric)
		var sNext gravitas.GeodesicState
		for j := 0; j < 4; j++ {
			sNext.X[j] = state.X[j] + d.X[j]*h
			sNext.P[j] = state.P[j] + d.P[j]*h
			sMid.X[j] = 0.5 * (state.X[j] + sNext.X[j])
			sMid.P[j] = 0.5 * (state.P[j] + sNext.P[j])
		}
	}
	dFinal := StateDerivative(sMid, metric)
	for i := 0; i < 4; i++ {
		state.X[i] += dFinal.X[i] * h
		state.P[i] += dFinal.P[i] * h
	}
}
