package integrator

import (
	"math"

	"github.com/steeltroops-ai/gravitas"
)

// AdaptiveRKF45Step performs one six-stage Runge-Kutta-Fehlberg 4(5) step
// of size h from state. It returns the fifth-order update and a scalar
// error estimate, the componentwise max over the 8 state components of
// |h * sum_j (b5_j - b4_j) k_j|. The coefficients are the classical
// Fehlberg 1969 pair, not the Cash-Karp variant that also circulates for
// this method.
func AdaptiveRKF45Step(state gravitas.GeodesicState, metric gravitas.Metric, h float64) (gravitas.GeodesicState, float64) {
	k1 := StateDerivative(state, metric)
	k2 := StateDerivative(combine(state, scaled(k1, h/4.0)), metric)
	k3 := StateDerivative(combine(state,
		scaled(k1, 3.0*h/32.0),
		scaled(k2, 9.0*h/32.0),
	), metric)
	k4 := StateDerivative(combine(state,
		scaled(k1, 1932.0*h/2197.0),
		scaled(k2, -7200.0*h/2197.0),
		scaled(k3, 7296.0*h/2197.0),
	), metric)
	k5 := StateDerivative(combine(state,
		scaled(k1, 439.0*h/216.0),
		scaled(k2, -8.0*h),
		scaled(k3, 3680.0*h/513.0),
		scaled(k4, -845.0*h/4104.0),
	), metric)
	k6 := StateDerivative(combine(state,
		scaled(k1, -8.0*h/27.0),
		scaled(k2, 2.0*h),
		scaled(k3, -3544.0*h/2565.0),
		scaled(k4, 1859.0*h/4104.0),
		scaled(k5, -11.0*h/40.0),
	), metric)

	final := state
	for i := 0; i < 4; i++ {
		final.X[i] += h * (16.0/135.0*k1.X[i] + 6656.0/12825.0*k3.X[i] + 28561.0/56430.0*k4.X[i] - 9.0/50.0*k5.X[i] + 2.0/55.0*k6.X[i])
		final.P[i] += h * (16.0/135.0*k1.P[i] + 6656.0/12825.0*k3.P[i] + 28561.0/56430.0*k4.P[i] - 9.0/50.0*k5.P[i] + 2.0/55.0*k6.P[i])
	}

	var errEstimate float64
	for i := 0; i < 4; i++ {
		errX := h * ((16.0/135.0-25.0/216.0)*k1.X[i] + (6656.0/12825.0-1408.0/2565.0)*k3.X[i] + (28561.0/56430.0-2197.0/4104.0)*k4.X[i] + (-9.0/50.0+1.0/5.0)*k5.X[i] + 2.0/55.0*k6.X[i])
		errP := h * ((16.0/135.0-25.0/216.0)*k1.P[i] + (6656.0/12825.0-1408.0/2565.0)*k3.P[i] + (28561.0/56430.0-2197.0/4104.0)*k4.P[i] + (-9.0/50.0+1.0/5.0)*k5.P[i] + 2.0/55.0*k6.P[i])
		errEstimate = math.Max(errEstimate, math.Max(math.Abs(errX), math.Abs(errP)))
	}

	return final, errEstimate
}

// AdaptiveStepper wraps AdaptiveRKF45Step with a PI-style step-size
// controller: grow on cheap acceptance, shrink on rejection, and force
// progress at min_step rather than stall near a coordinate singularity.
type AdaptiveStepper struct {
	SafetyFactor float64
	MinStep      float64
	MaxStep      float64
	Tolerance    float64
}

// NewAdaptiveStepper returns a controller with the default safety factor
// (0.9) and step bounds ([1e-5, 10.0]) for the given tolerance.
func NewAdaptiveStepper(tolerance float64) *AdaptiveStepper {
	return &AdaptiveStepper{
		SafetyFactor: 0.9,
		MinStep:      1e-5,
		MaxStep:      10.0,
		Tolerance:    tolerance,
	}
}

// Step performs one adaptive RKF45 step, mutating state in place, and
// returns the recommended step size for the next call. hTry is clamped to
// [-MaxStep, MaxStep] before any trial.
func (a *AdaptiveStepper) Step(state *gravitas.GeodesicState, metric gravitas.Metric, hTry float64) float64 {
	h := clamp(hTry, a.MaxStep)

	for {
		newState, errEstimate := AdaptiveRKF45Step(*state, metric, h)

		var ratio float64
		if errEstimate == 0 {
			ratio = 0
		} else {
			ratio = errEstimate / a.Tolerance
		}

		if ratio <= 1.0 {
			*state = newState

			var growth float64
			if ratio < 1e-4 {
				growth = 5.0
			} else {
				growth = a.SafetyFactor * math.Pow(ratio, -0.2)
			}
			growth = math.Min(growth, 5.0)

			return clamp(h*growth, a.MaxStep)
		}

		shrink := math.Max(a.SafetyFactor*math.Pow(ratio, -0.25), 0.1)
		h *= shrink

		if math.Abs(h) < a.MinStep {
			forcedH := a.MinStep * sign(h)
			forced, _ := AdaptiveRKF45Step(*state, metric, forcedH)
			*state = forced
			return forcedH
		}
	}
}

func clamp(h, maxStep float64) float64 {
	if h > maxStep {
		return maxStep
	}
	if h < -maxStep {
		return -maxStep
	}
	return h
}

func sign(h float64) float64 {
	if h < 0 {
		return -1
	}
	return 1
}
