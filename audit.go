package gravitas

import "math"

// auditEpsilon is the central-difference step used by NumericalAudit.
const auditEpsilon = 1e-7

// NumericalAudit validates a metric's analytic Hamiltonian derivatives
// against central-difference derivatives of H = 1/2 g^{mu nu} p_mu p_nu.
// It is test-only tooling: a metric implementation checking itself.
type NumericalAudit struct {
	Metric Metric
	Eps    float64
}

// NewNumericalAudit returns an audit harness for the given metric with the
// default central-difference step.
func NewNumericalAudit(metric Metric) NumericalAudit {
	return NumericalAudit{Metric: metric, Eps: auditEpsilon}
}

func (n NumericalAudit) hamiltonianAt(r, theta float64, p [4]float64) float64 {
	gInv := n.Metric.Contravariant(r, theta)
	return 0.5 * gInv.Contract(p)
}

// NumericalDerivatives computes dH/dr and dH/dtheta by central difference.
func (n NumericalAudit) NumericalDerivatives(r, theta float64, p [4]float64) HamiltonianDerivatives {
	eps := n.Eps
	dhDr := (n.hamiltonianAt(r+eps, theta, p) - n.hamiltonianAt(r-eps, theta, p)) / (2 * eps)
	dhDtheta := (n.hamiltonianAt(r, theta+eps, p) - n.hamiltonianAt(r, theta-eps, p)) / (2 * eps)
	return HamiltonianDerivatives{DhDr: dhDr, DhDtheta: dhDtheta}
}

// MaxRelativeError compares the metric's analytic HamiltonianDerivatives
// against the central-difference numerical derivatives and returns the
// max over (dr, dtheta) of the relative error (or absolute error when the
// numerical value is too small to divide by safely).
func (n NumericalAudit) MaxRelativeError(r, theta float64, p [4]float64) float64 {
	analytic := n.Metric.HamiltonianDerivatives(r, theta, p)
	numerical := n.NumericalDerivatives(r, theta, p)

	errR := errorOf(analytic.DhDr, numerical.DhDr)
	errTheta := errorOf(analytic.DhDtheta, numerical.DhDtheta)

	return math.Max(errR, errTheta)
}

func errorOf(analytic, numerical float64) float64 {
	if math.Abs(numerical) > 1e-15 {
		return math.Abs((analytic - numerical) / numerical)
	}
	return math.Abs(analytic - numerical)
}
