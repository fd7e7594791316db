// Package integrator advances a gravitas.GeodesicState along a null
// geodesic using one of three steppers (fixed RK4, adaptive embedded
// RKF45, or symplectic implicit midpoint) and drives a full trajectory to
// termination.
package integrator

import "github.com/steeltroops-ai/gravitas"

// StateDerivative evaluates Hamilton's equations
//
//	dx^mu/dlambda = dH/dp_mu = g^{mu nu} p_nu
//	dp_mu/dlambda = -dH/dx^mu
//
// at the given state. Since the metric is stationary and axisymmetric,
// dH/dt = dH/dphi = 0 identically, so p_t and p_phi are constants of
// motion and their derivative components are always zero.
func StateDerivative(state gravitas.GeodesicState, metric gravitas.Metric) gravitas.GeodesicState {
	r, theta := state.Radius(), state.PolarAngle()
	gInv := metric.Contravariant(r, theta)
	p := state.P

	dt := gInv.At(gravitas.T, gravitas.T)*p[gravitas.T] + gInv.At(gravitas.T, gravitas.R)*p[gravitas.R] + gInv.At(gravitas.T, gravitas.Phi)*p[gravitas.Phi]
	dr := gInv.At(gravitas.R, gravitas.T)*p[gravitas.T] + gInv.At(gravitas.R, gravitas.R)*p[gravitas.R] + gInv.At(gravitas.R, gravitas.Phi)*p[gravitas.Phi]
	dth := gInv.At(gravitas.Theta, gravitas.Theta) * p[gravitas.Theta]
	dph := gInv.At(gravitas.Phi, gravitas.T)*p[gravitas.T] + gInv.At(gravitas.Phi, gravitas.R)*p[gravitas.R] + gInv.At(gravitas.Phi, gravitas.Phi)*p[gravitas.Phi]

	derivs := metric.HamiltonianDerivatives(r, theta, p)

	return gravitas.GeodesicState{
		X: [4]float64{dt, dr, dth, dph},
		P: [4]float64{0, -derivs.DhDr, -derivs.DhDtheta, 0},
	}
}

// addScaled returns state + h*d, a single Euler-style combination used to
// assemble Runge-Kutta stage states.
func addScaled(state, d gravitas.GeodesicState, h float64) gravitas.GeodesicState {
	var out gravitas.GeodesicState
	for i := 0; i < 4; i++ {
		out.X[i] = state.X[i] + h*d.X[i]
		out.P[i] = state.P[i] + h*d.P[i]
	}
	return out
}

// combine returns state + sum(coeff_i * d_i), combining up to six scaled
// derivative evaluations without mutating state.
func combine(state gravitas.GeodesicState, terms ...stage) gravitas.GeodesicState {
	out := state
	for _, term := range terms {
		for i := 0; i < 4; i++ {
			out.X[i] += term.coeff * term.d.X[i]
			out.P[i] += term.coeff * term.d.P[i]
		}
	}
	return out
}

type stage struct {
	d     gravitas.GeodesicState
	coeff float64
}

func scaled(d gravitas.GeodesicState, coeff float64) stage {
	return stage{d: d, coeff: coeff}
}
