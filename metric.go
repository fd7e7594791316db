package gravitas

// Orbit selects prograde (co-rotating) or retrograde (counter-rotating)
// circular-orbit branches for ISCO and related quantities.
type Orbit uint8

const (
	// Prograde orbits co-rotate with the black hole's spin.
	Prograde Orbit = iota + 1
	// Retrograde orbits counter-rotate against the black hole's spin.
	Retrograde
)

func (o Orbit) String() string {
	switch o {
	case Prograde:
		return "prograde"
	case Retrograde:
		return "retrograde"
	default:
		return "unknown"
	}
}

// HamiltonianDerivatives holds the two non-trivial partial derivatives of
// the Hamiltonian H = 1/2 g^{mu nu} p_mu p_nu. dH/dt and dH/dphi are
// identically zero for any stationary, axisymmetric metric and are never
// stored or returned.
type HamiltonianDerivatives struct {
	DhDr     float64
	DhDtheta float64
}

// Metric is the capability set every spacetime implementation exposes:
// covariant and contravariant tensors plus the closed-form Hamiltonian
// derivatives that drive the geodesic integrators. Implementations are
// pure functions of (r, theta, p) and never panic; singular evaluations
// are handled via the small-denominator floors each implementation
// documents, not via an error return.
type Metric interface {
	// Covariant returns g_{mu nu} at (r, theta).
	Covariant(r, theta float64) MetricTensor
	// Contravariant returns g^{mu nu} at (r, theta).
	Contravariant(r, theta float64) MetricTensor
	// HamiltonianDerivatives returns (dH/dr, dH/dtheta) for momentum p at
	// (r, theta), computed in closed form from the same algebraic
	// expressions as Covariant/Contravariant.
	HamiltonianDerivatives(r, theta float64, p [4]float64) HamiltonianDerivatives
	// Mass returns the black hole mass parameter M in geometric units.
	Mass() float64
	// Spin returns the dimensionless spin parameter a* in [-1, 1].
	// Non-rotating metrics return 0.
	Spin() float64
	// EventHorizon returns the event horizon radius r_+.
	EventHorizon() float64
}
