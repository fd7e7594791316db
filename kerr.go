package gravitas

import "math"

// KerrChart selects the coordinate chart a Kerr spacetime is expressed in.
// This is an internal selector on Kerr, not a distinct metric type: both
// charts describe the same physical spacetime.
type KerrChart uint8

const (
	// BoyerLindquist is the "astronomer's" Kerr chart: diagonal except for
	// g_tphi, but singular at the event horizon.
	BoyerLindquist KerrChart = iota + 1
	// KerrSchild is regular at the horizon, at the cost of non-zero
	// g_tr and g_rphi cross terms.
	KerrSchild
)

func (c KerrChart) String() string {
	switch c {
	case BoyerLindquist:
		return "boyer-lindquist"
	case KerrSchild:
		return "kerr-schild"
	default:
		return "unknown"
	}
}

// sin2Floor is the pole threshold on sin^2(theta) below which the
// Boyer-Lindquist inverse metric sets g^phph to zero.
const sin2Floor = 1e-9

// sin2FloorKS is the tighter floor used by the Kerr-Schild chart, which
// must also remain regular on the horizon.
const sin2FloorKS = 1e-12

// Kerr is a rotating black hole spacetime with mass M and dimensionless
// spin a* = J/M^2, clamped to [-1, 1] on construction and immutable
// thereafter.
type Kerr struct {
	mass  float64
	spin  float64
	chart KerrChart
}

// NewKerr returns a Kerr spacetime in Boyer-Lindquist coordinates.
func NewKerr(mass, spinStar float64) Kerr {
	return Kerr{mass: mass, spin: clampSpin(spinStar), chart: BoyerLindquist}
}

// NewKerrSchild returns a Kerr spacetime in Kerr-Schild coordinates,
// regular at the event horizon.
func NewKerrSchild(mass, spinStar float64) Kerr {
	return Kerr{mass: mass, spin: clampSpin(spinStar), chart: KerrSchild}
}

func clampSpin(spinStar float64) float64 {
	if spinStar > 1 {
		return 1
	}
	if spinStar < -1 {
		return -1
	}
	return spinStar
}

// Chart returns the coordinate chart this value is expressed in.
func (k Kerr) Chart() KerrChart { return k.chart }

// Mass returns the black hole mass M.
func (k Kerr) Mass() float64 { return k.mass }

// Spin returns the dimensionless spin a*.
func (k Kerr) Spin() float64 { return k.spin }

// a is the geometric spin a = a* M.
func (k Kerr) a() float64 { return k.spin * k.mass }

// Sigma = r^2 + a^2 cos^2(theta). Appears in every Kerr metric component.
func (k Kerr) Sigma(r, theta float64) float64 {
	a := k.a()
	c := math.Cos(theta)
	return r*r + a*a*c*c
}

// Delta = r^2 - 2Mr + a^2. Zero at the event horizons.
func (k Kerr) Delta(r float64) float64 {
	a := k.a()
	return r*r - 2*k.mass*r + a*a
}

// EventHorizon returns r_+ = M + sqrt(M^2 - a^2), falling back to M when
// the discriminant is negative (non-physical spin).
func (k Kerr) EventHorizon() float64 {
	m, a := k.mass, k.a()
	disc := m*m - a*a
	if disc < 0 {
		return m
	}
	return m + math.Sqrt(disc)
}

// CauchyHorizon returns the inner horizon r_- = M - sqrt(M^2 - a^2).
func (k Kerr) CauchyHorizon() float64 {
	m, a := k.mass, k.a()
	disc := m*m - a*a
	if disc < 0 {
		return 0
	}
	return m - math.Sqrt(disc)
}

// PhotonSphere returns the prograde equatorial photon sphere radius
// r_ph = 2M[1 + cos(2/3 arccos(-a*))].
func (k Kerr) PhotonSphere() float64 {
	term := (2.0 / 3.0) * math.Acos(-k.spin)
	return 2 * k.mass * (1 + math.Cos(term))
}

// ISCO returns the innermost stable circular orbit radius for the given
// orbit sense, via the Bardeen-Press-Teukolsky (1972) formula.
func (k Kerr) ISCO(orbit Orbit) float64 {
	aStar := k.spin
	m := k.mass

	if math.Abs(aStar) < 1e-6 {
		return 6 * m
	}

	a2 := aStar * aStar
	z1 := 1 + math.Cbrt(1-a2)*(math.Cbrt(1+aStar)+math.Cbrt(1-aStar))
	z2 := math.Sqrt(3*a2 + z1*z1)

	sign := -1.0
	if orbit == Retrograde {
		sign = 1.0
	}

	disc := (3 - z1) * (3 + z1 + 2*z2)
	root := 0.0
	if disc >= 0 {
		root = math.Sqrt(disc)
	}

	return m * (3 + z2 + sign*root)
}

// Ergosphere returns the ergosphere radius at polar angle theta:
// r_ergo = M + sqrt(M^2 - a^2 cos^2(theta)), falling back to M if the
// discriminant is negative.
func (k Kerr) Ergosphere(theta float64) float64 {
	m, a := k.mass, k.a()
	c := math.Cos(theta)
	disc := m*m - a*a*c*c
	if disc < 0 {
		return m
	}
	return m + math.Sqrt(disc)
}

// FrameDragging returns the ZAMO angular velocity omega = -g_tphi/g_phiphi
// at arbitrary (r, theta).
func (k Kerr) FrameDragging(r, theta float64) float64 {
	g := k.Covariant(r, theta)
	gTphi := g.At(T, Phi)
	gPhph := g.At(Phi, Phi)
	if math.Abs(gPhph) < 1e-30 {
		return 0
	}
	return -gTphi / gPhph
}

// FrameDraggingEquator returns the equatorial frame-dragging angular
// velocity omega = 2Ma/(r^3 + a^2 r + 2Ma^2), a closed-form shortcut for
// theta = pi/2 that avoids a full covariant evaluation.
func (k Kerr) FrameDraggingEquator(r float64) float64 {
	a, m := k.a(), k.mass
	num := 2 * m * a
	den := r*r*r + a*a*r + 2*m*a*a
	if math.Abs(den) < 1e-30 {
		return 0
	}
	return num / den
}

// TimeDilation returns dtau/dt = sqrt(-g_tt) for a static observer at
// (r, theta).
func (k Kerr) TimeDilation(r, theta float64) float64 {
	gtt := k.Covariant(r, theta).At(T, T)
	if gtt >= 0 {
		return 0
	}
	return math.Sqrt(-gtt)
}

// CircularOrbitAngularVelocity returns the Keplerian angular velocity
// Omega_K = sqrt(M) / (r^1.5 + a sqrt(M)) of a prograde equatorial circular
// orbit at radius r. Closed-form and reproducible without the integrator.
func (k Kerr) CircularOrbitAngularVelocity(r float64) float64 {
	m, a := k.mass, k.a()
	sqrtM := math.Sqrt(m)
	return sqrtM / (math.Pow(r, 1.5) + a*sqrtM)
}

// CircularOrbitEnergy returns the specific energy E(r) of a prograde
// equatorial circular geodesic, per Bardeen-Press-Teukolsky (1972) eq. 2.12.
func (k Kerr) CircularOrbitEnergy(r float64) float64 {
	m, a := k.mass, k.a()
	sqrtM := math.Sqrt(m)
	sqrtR := math.Sqrt(r)
	num := math.Pow(r, 1.5) - 2*m*sqrtR + a*sqrtM
	den := math.Pow(r, 0.75) * math.Sqrt(math.Pow(r, 1.5)-3*m*sqrtR+2*a*sqrtM)
	return num / den
}

// CircularOrbitAngularMomentum returns the specific angular momentum L(r)
// of a prograde equatorial circular geodesic, per Bardeen-Press-Teukolsky
// (1972) eq. 2.13.
func (k Kerr) CircularOrbitAngularMomentum(r float64) float64 {
	m, a := k.mass, k.a()
	sqrtM := math.Sqrt(m)
	sqrtR := math.Sqrt(r)
	num := sqrtM * (r*r - 2*a*sqrtM*sqrtR + a*a)
	den := math.Pow(r, 0.75) * math.Sqrt(math.Pow(r, 1.5)-3*m*sqrtR+2*a*sqrtM)
	return num / den
}

// KretschmannScalar returns the Kretschmann curvature invariant
// K = 48 M^2 (r^6 - 15 r^4 a^2 cos^2(theta) + 15 r^2 a^4 cos^4(theta) -
// a^6 cos^6(theta)) / Sigma^6, a coordinate-invariant measure of tidal
// forces.
func (k Kerr) KretschmannScalar(r, theta float64) float64 {
	a := k.a()
	r2 := r * r
	a2 := a * a
	c := math.Cos(theta)
	c2 := c * c
	c4 := c2 * c2
	c6 := c4 * c2
	r4 := r2 * r2
	r6 := r4 * r2
	a4 := a2 * a2
	a6 := a4 * a2

	sigma := k.Sigma(r, theta)
	sigma6 := math.Pow(sigma, 6)
	if sigma6 < 1e-30 {
		return math.Inf(1)
	}

	numerator := r6 - 15*r4*a2*c2 + 15*r2*a4*c4 - a6*c6
	return 48 * k.mass * k.mass * numerator / sigma6
}

// Covariant dispatches to the chart-specific covariant tensor.
func (k Kerr) Covariant(r, theta float64) MetricTensor {
	if k.chart == KerrSchild {
		return k.covariantKS(r, theta)
	}
	return k.covariantBL(r, theta)
}

// Contravariant dispatches to the chart-specific inverse tensor.
func (k Kerr) Contravariant(r, theta float64) MetricTensor {
	if k.chart == KerrSchild {
		return k.contravariantKS(r, theta)
	}
	return k.contravariantBL(r, theta)
}

// HamiltonianDerivatives dispatches to the chart-specific closed-form
// derivatives.
func (k Kerr) HamiltonianDerivatives(r, theta float64, p [4]float64) HamiltonianDerivatives {
	if k.chart == KerrSchild {
		return k.hamiltonianDerivativesKS(r, theta, p)
	}
	return k.hamiltonianDerivativesBL(r, theta, p)
}

func (k Kerr) covariantBL(r, theta float64) MetricTensor {
	m, a := k.mass, k.a()
	sigma := k.Sigma(r, theta)
	delta := k.Delta(r)
	sin2 := math.Sin(theta) * math.Sin(theta)

	gtt := -(1 - 2*m*r/sigma)
	grr := sigma / delta
	gthth := sigma
	gphph := (r*r + a*a + 2*m*r*a*a*sin2/sigma) * sin2
	gtphi := -2 * m * r * a * sin2 / sigma

	var c [16]float64
	c[T*4+T] = gtt
	c[R*4+R] = grr
	c[Theta*4+Theta] = gthth
	c[Phi*4+Phi] = gphph
	c[T*4+Phi] = gtphi
	c[Phi*4+T] = gtphi
	return MetricTensor{components: c}
}

func (k Kerr) contravariantBL(r, theta float64) MetricTensor {
	m, a := k.mass, k.a()
	sigma := k.Sigma(r, theta)
	delta := k.Delta(r)
	sin2 := math.Sin(theta) * math.Sin(theta)

	gtt := -(sigma*(r*r+a*a) + 2*m*r*a*a*sin2) / (delta * sigma)
	grr := delta / sigma
	gthth := 1 / sigma
	var gphph float64
	if sin2 < sin2Floor {
		gphph = 0
	} else {
		gphph = (delta - a*a*sin2) / (delta * sigma * sin2)
	}
	gtphi := -2 * m * r * a / (delta * sigma)

	var c [16]float64
	c[T*4+T] = gtt
	c[R*4+R] = grr
	c[Theta*4+Theta] = gthth
	c[Phi*4+Phi] = gphph
	c[T*4+Phi] = gtphi
	c[Phi*4+T] = gtphi
	return MetricTensor{components: c}
}

// hamiltonianDerivativesBL assembles dH/dr and dH/dtheta from the full
// algebraic expansion of the five nonzero Boyer-Lindquist inverse-metric
// components, with the off-diagonal (t, phi) term contributing twice.
func (k Kerr) hamiltonianDerivativesBL(r, theta float64, p [4]float64) HamiltonianDerivatives {
	m, a := k.mass, k.a()
	r2 := r * r
	a2 := a * a
	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)
	sin2 := sinTheta * sinTheta
	cos2 := cosTheta * cosTheta

	sigma := r2 + a2*cos2
	delta := r2 - 2*m*r + a2
	sigmaSq := sigma * sigma

	dSigmaDr := 2 * r
	dSigmaDtheta := -2 * a2 * cosTheta * sinTheta
	dDeltaDr := 2*r - 2*m

	// g^rr = Delta/Sigma
	dgRrDr := (dDeltaDr*sigma - delta*dSigmaDr) / sigmaSq
	dgRrDtheta := -(delta * dSigmaDtheta) / sigmaSq

	// g^thth = 1/Sigma
	dgThthDr := -dSigmaDr / sigmaSq
	dgThthDtheta := -dSigmaDtheta / sigmaSq

	// g^tphi = -2Mra / (Delta*Sigma)
	numTphi := -2 * m * r * a
	denTphi := delta * sigma
	dNumTphiDr := -2 * m * a
	dDenTphiDr := dDeltaDr*sigma + delta*dSigmaDr
	dgTphiDr := (dNumTphiDr*denTphi - numTphi*dDenTphiDr) / (denTphi * denTphi)
	dDenTphiDtheta := delta * dSigmaDtheta
	dgTphiDtheta := -(numTphi * dDenTphiDtheta) / (denTphi * denTphi)

	// g^tt = -[Sigma(r^2+a^2) + 2Mra^2 sin^2(theta)] / (Delta*Sigma)
	u := sigma*(r2+a2) + 2*m*r*a2*sin2
	dUDr := dSigmaDr*(r2+a2) + sigma*2*r + 2*m*a2*sin2
	dVDr := dDenTphiDr
	dgTtDr := -(dUDr*denTphi - u*dVDr) / (denTphi * denTphi)

	dUDtheta := dSigmaDtheta*(r2+a2) + 2*m*r*a2*2*sinTheta*cosTheta
	dVDtheta := dDenTphiDtheta
	dgTtDtheta := -(dUDtheta*denTphi - u*dVDtheta) / (denTphi * denTphi)

	// g^phph = 1/(Sigma sin^2) - a^2/(Delta*Sigma)
	dADr := -dSigmaDr / (sigmaSq * sin2)
	dBDr := -a2 * dDenTphiDr / (denTphi * denTphi)
	dgPhphDr := dADr - dBDr

	dDenomADtheta := dSigmaDtheta*sin2 + sigma*2*sinTheta*cosTheta
	dADtheta := -dDenomADtheta / (sigmaSq * sin2 * sin2)
	dBDtheta := -a2 * dDenTphiDtheta / (denTphi * denTphi)
	dgPhphDtheta := dADtheta - dBDtheta

	pt, pr, pth, pph := p[0], p[1], p[2], p[3]

	dhDr := 0.5 * (pt*pt*dgTtDr + pr*pr*dgRrDr + pth*pth*dgThthDr + pph*pph*dgPhphDr + 2*pt*pph*dgTphiDr)
	dhDtheta := 0.5 * (pt*pt*dgTtDtheta + pr*pr*dgRrDtheta + pth*pth*dgThthDtheta + pph*pph*dgPhphDtheta + 2*pt*pph*dgTphiDtheta)

	return HamiltonianDerivatives{DhDr: dhDr, DhDtheta: dhDtheta}
}

func (k Kerr) covariantKS(r, theta float64) MetricTensor {
	m, a := k.mass, k.a()
	sigma := k.Sigma(r, theta)
	sin2 := math.Sin(theta) * math.Sin(theta)
	rpa2 := r*r + a*a
	hGeo := m * r / sigma

	lt := 1.0
	lr := sigma / rpa2
	lphi := -a * sin2

	etaTt := -1.0
	etaRr := sigma / rpa2
	etaThth := sigma
	etaPhph := rpa2 * sin2

	gtt := etaTt + 2*hGeo*lt*lt
	gtr := 2 * hGeo * lt * lr
	gtphi := 2 * hGeo * lt * lphi
	grr := etaRr + 2*hGeo*lr*lr
	grphi := 2 * hGeo * lr * lphi
	gthth := etaThth
	gphph := etaPhph + 2*hGeo*lphi*lphi

	var c [16]float64
	c[T*4+T] = gtt
	c[T*4+R] = gtr
	c[R*4+T] = gtr
	c[T*4+Phi] = gtphi
	c[Phi*4+T] = gtphi
	c[R*4+R] = grr
	c[R*4+Phi] = grphi
	c[Phi*4+R] = grphi
	c[Theta*4+Theta] = gthth
	c[Phi*4+Phi] = gphph
	return MetricTensor{components: c}
}

func (k Kerr) contravariantKS(r, theta float64) MetricTensor {
	m, a := k.mass, k.a()
	sigma := k.Sigma(r, theta)
	delta := k.Delta(r)
	sin2 := math.Max(math.Sin(theta)*math.Sin(theta), sin2FloorKS)

	gtt := -(1 + 2*m*r/sigma)
	gtr := 2 * m * r / sigma
	grr := delta / sigma
	gthth := 1 / sigma
	gphph := 1 / (sigma * sin2)
	grphi := a / sigma

	var c [16]float64
	c[T*4+T] = gtt
	c[T*4+R] = gtr
	c[R*4+T] = gtr
	c[R*4+R] = grr
	c[Theta*4+Theta] = gthth
	c[Phi*4+Phi] = gphph
	c[R*4+Phi] = grphi
	c[Phi*4+R] = grphi
	return MetricTensor{components: c}
}

// hamiltonianDerivativesKS differentiates the closed-form Kerr-Schild
// inverse metric directly; dH/dtheta is forced to zero when |sin(theta)|
// falls below the near-axis floor.
func (k Kerr) hamiltonianDerivativesKS(r, theta float64, p [4]float64) HamiltonianDerivatives {
	m, a := k.mass, k.a()
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)
	sin2 := sinTheta * sinTheta
	sigma := k.Sigma(r, theta)
	delta := k.Delta(r)
	sigmaSq := sigma * sigma

	dSigmaDr := 2 * r
	dSigmaDtheta := -2 * a * a * cosTheta * sinTheta
	dDeltaDr := 2*r - 2*m

	// g^tt = -1 - 2Mr/Sigma
	dMrSigmaDr := m * (sigma - r*dSigmaDr) / sigmaSq
	dMrSigmaDtheta := -m * r * dSigmaDtheta / sigmaSq
	dgTtDr := -2 * dMrSigmaDr
	dgTtDtheta := -2 * dMrSigmaDtheta

	// g^tr = 2Mr/Sigma
	dgTrDr := 2 * dMrSigmaDr
	dgTrDtheta := 2 * dMrSigmaDtheta

	// g^rr = Delta/Sigma
	dgRrDr := (dDeltaDr*sigma - delta*dSigmaDr) / sigmaSq
	dgRrDtheta := -delta * dSigmaDtheta / sigmaSq

	// g^thth = 1/Sigma
	dgThthDr := -dSigmaDr / sigmaSq
	dgThthDtheta := -dSigmaDtheta / sigmaSq

	// g^rphi = a/Sigma
	dgRphiDr := -a * dSigmaDr / sigmaSq
	dgRphiDtheta := -a * dSigmaDtheta / sigmaSq

	// g^phph = 1/(Sigma sin^2)
	dgPhphDr := -dSigmaDr / (sigmaSq * math.Max(sin2, sin2FloorKS))

	pt, pr, pth, pph := p[0], p[1], p[2], p[3]

	dhDr := 0.5 * (pt*pt*dgTtDr + 2*pt*pr*dgTrDr + pr*pr*dgRrDr + pth*pth*dgThthDr + pph*pph*dgPhphDr + 2*pr*pph*dgRphiDr)

	var dhDtheta float64
	if math.Abs(sinTheta) >= 1e-10 {
		sin2Safe := math.Max(sin2, sin2FloorKS)
		w := sigma * sin2Safe
		dwDtheta := dSigmaDtheta*sin2Safe + sigma*2*sinTheta*cosTheta
		dgPhphDtheta := -dwDtheta / (w * w)

		dhDtheta = 0.5 * (pt*pt*dgTtDtheta + 2*pt*pr*dgTrDtheta + pr*pr*dgRrDtheta +
			pth*pth*dgThthDtheta + pph*pph*dgPhphDtheta + 2*pr*pph*dgRphiDtheta)
	}

	return HamiltonianDerivatives{DhDr: dhDr, DhDtheta: dhDtheta}
}
