package gravitas

// GeodesicState is the 8-dimensional phase-space state of a photon:
// contravariant coordinates X = (t, r, theta, phi) and covariant momentum
// P = (p_t, p_r, p_theta, p_phi). It is constructed once by the caller from
// a seed direction, mutated only by the integrator driver, and consumed by
// the terminator.
type GeodesicState struct {
	X [4]float64
	P [4]float64
}

// NewGeodesicState builds a state from explicit coordinate and momentum
// components.
func NewGeodesicState(t, r, theta, phi, pt, pr, ptheta, pphi float64) GeodesicState {
	return GeodesicState{
		X: [4]float64{t, r, theta, phi},
		P: [4]float64{pt, pr, ptheta, pphi},
	}
}

// NullRay builds a photon state at (r, theta, phi) with the conventional
// unit energy p_t = -1 and the given spatial momentum components.
func NullRay(r, theta, phi, pr, ptheta, pphi float64) GeodesicState {
	return NewGeodesicState(0, r, theta, phi, -1, pr, ptheta, pphi)
}

// Radius returns the current radial coordinate r.
func (s GeodesicState) Radius() float64 { return s.X[R] }

// PolarAngle returns the current polar angle theta.
func (s GeodesicState) PolarAngle() float64 { return s.X[Theta] }

// Encode lays the state out as 8 contiguous doubles in the order
// (t, r, theta, phi, p_t, p_r, p_theta, p_phi), the byte-exact wire layout
// used when a trajectory crosses a language or process boundary.
func (s GeodesicState) Encode() [8]float64 {
	return [8]float64{s.X[0], s.X[1], s.X[2], s.X[3], s.P[0], s.P[1], s.P[2], s.P[3]}
}

// DecodeGeodesicState reconstructs a state from its wire layout.
func DecodeGeodesicState(w [8]float64) GeodesicState {
	return GeodesicState{
		X: [4]float64{w[0], w[1], w[2], w[3]},
		P: [4]float64{w[4], w[5], w[6], w[7]},
	}
}
