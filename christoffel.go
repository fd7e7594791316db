package gravitas

import "gonum.org/v1/gonum/floats"

// ChristoffelSymbols computes the connection coefficients Gamma^alpha_{mu nu}
// at (r, theta) via central differences of the covariant metric, the
// numerical Christoffel helper the specification allows in place of a full
// covariant-derivative / automatic-differentiation machinery. It is audit
// and diagnostic tooling, not part of the production right-hand side.
//
// Returns a [4][4][4] array indexed [alpha][mu][nu]. Since the metric is
// stationary and axisymmetric, dg/dt = dg/dphi = 0 identically; only the r
// and theta derivatives are evaluated.
func ChristoffelSymbols(m Metric, r, theta, eps float64) [4][4][4]float64 {
	gInv := m.Contravariant(r, theta)

	zero := [16]float64{}
	dgDr := metricDerivative(m, r, theta, eps, true)
	dgDtheta := metricDerivative(m, r, theta, eps, false)

	dg := [4][16]float64{zero, dgDr, dgDtheta, zero}

	var gamma [4][4][4]float64
	for alpha := 0; alpha < 4; alpha++ {
		gInvRow := make([]float64, 4)
		for sigma := 0; sigma < 4; sigma++ {
			gInvRow[sigma] = gInv.At(alpha, sigma)
		}
		for mu := 0; mu < 4; mu++ {
			for nu := 0; nu < 4; nu++ {
				terms := make([]float64, 4)
				for sigma := 0; sigma < 4; sigma++ {
					terms[sigma] = dg[nu][sigma*4+mu] + dg[mu][sigma*4+nu] - dg[sigma][mu*4+nu]
				}
				gamma[alpha][mu][nu] = 0.5 * floats.Dot(gInvRow, terms)
			}
		}
	}
	return gamma
}

func metricDerivative(m Metric, r, theta, eps float64, wrtR bool) [16]float64 {
	var plus, minus MetricTensor
	if wrtR {
		plus = m.Covariant(r+eps, theta)
		minus = m.Covariant(r-eps, theta)
	} else {
		plus = m.Covariant(r, theta+eps)
		minus = m.Covariant(r, theta-eps)
	}
	pa, ma := plus.Array(), minus.Array()
	var d [16]float64
	for i := range d {
		d[i] = (pa[i] - ma[i]) / (2 * eps)
	}
	return d
}
