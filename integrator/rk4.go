package integrator

import "github.com/steeltroops-ai/gravitas"

// StepRK4 advances state by one fixed-step classical 4th-order Runge-Kutta
// update of size h, in place. Used as a baseline and reference
// implementation against the adaptive and symplectic steppers.
func StepRK4(state *gravitas.GeodesicState, metric gravitas.Metric, h float64) {
	k1 := StateDerivative(*state, metric)
	k2 := StateDerivative(addScaled(*state, k1, 0.5*h), metric)
	k3 := StateDerivative(addScaled(*state, k2, 0.5*h), metric)
	k4 := StateDerivative(addScaled(*state, k3, h), metric)

	for i := 0; i < 4; i++ {
		state.X[i] += (h / 6.0) * (k1.X[i] + 2*k2.X[i] + 2*k3.X[i] + k4.X[i])
		state.P[i] += (h / 6.0) * (k1.P[i] + 2*k2.P[i] + 2*k3.P[i] + k4.P[i])
	}
}
