package gravitas

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestSchwarzschildIdentities(t *testing.T) {
	s := NewSchwarzschild(1.0)

	if !floats.EqualWithinAbs(s.EventHorizon(), 2.0, 1e-6) {
		t.Fatalf("Schwarzschild horizon = %v, want 2M", s.EventHorizon())
	}
	if !floats.EqualWithinAbs(s.PhotonSphere(), 3.0, 1e-6) {
		t.Fatalf("Schwarzschild photon sphere = %v, want 3M", s.PhotonSphere())
	}
	if !floats.EqualWithinAbs(s.ISCO(), 6.0, 1e-6) {
		t.Fatalf("Schwarzschild ISCO = %v, want 6M", s.ISCO())
	}
}

func TestKerrExtremeSpinISCO(t *testing.T) {
	k := NewKerr(1.0, 0.998)
	isco := k.ISCO(Prograde)
	if isco >= 1.5 {
		t.Fatalf("near-extremal prograde ISCO = %v, want < 1.5M", isco)
	}
}

func TestKerrExtremeSpinHorizon(t *testing.T) {
	k := NewKerr(1.0, 1.0)
	if !floats.EqualWithinAbs(k.EventHorizon(), 1.0, 1e-12) {
		t.Fatalf("extremal Kerr horizon = %v, want 1.0M", k.EventHorizon())
	}
}

func TestKerrSchwarzschildLimitMatchesSchwarzschild(t *testing.T) {
	k := NewKerr(1.0, 0.0)
	s := NewSchwarzschild(1.0)

	r, theta := 10.0, math.Pi/3
	kg, sg := k.Covariant(r, theta), s.Covariant(r, theta)
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			if !floats.EqualWithinAbs(kg.At(mu, nu), sg.At(mu, nu), 1e-10) {
				t.Fatalf("Kerr(a*=0).Covariant[%d][%d] = %v, Schwarzschild = %v", mu, nu, kg.At(mu, nu), sg.At(mu, nu))
			}
		}
	}
}

func TestMetricTensorsAreSymmetric(t *testing.T) {
	metrics := []Metric{
		NewKerr(1.0, 0.9),
		NewKerrSchild(1.0, 0.9),
		NewSchwarzschild(1.0),
		NewMinkowski(),
	}
	r, theta := 15.0, 1.2

	for _, m := range metrics {
		if !m.Covariant(r, theta).IsSymmetric(1e-9) {
			t.Fatalf("%T covariant tensor is not symmetric", m)
		}
		if !m.Contravariant(r, theta).IsSymmetric(1e-9) {
			t.Fatalf("%T contravariant tensor is not symmetric", m)
		}
	}
}

func TestNumericalAuditMatchesAnalyticDerivatives(t *testing.T) {
	cases := []struct {
		name   string
		metric Metric
		r      float64
		theta  float64
	}{
		{"kerr-bl", NewKerr(1.0, 0.9), 8.0, 1.1},
		{"kerr-schild", NewKerrSchild(1.0, 0.9), 8.0, 1.1},
		{"schwarzschild", NewSchwarzschild(1.0), 10.0, math.Pi / 2},
		{"minkowski", NewMinkowski(), 10.0, math.Pi / 2},
	}

	p := [4]float64{-1, -0.3, 0.02, 2.5}

	for _, c := range cases {
		audit := NewNumericalAudit(c.metric)
		maxErr := audit.MaxRelativeError(c.r, c.theta, p)
		if maxErr > 1e-4 {
			t.Fatalf("%s: numerical audit max relative error = %v, want <= 1e-4", c.name, maxErr)
		}
	}
}

func TestKerrBLKerrSchildHamiltonianAgree(t *testing.T) {
	mass, spin := 1.0, 0.9
	bl := NewKerr(mass, spin)
	ks := NewKerrSchild(mass, spin)

	r, theta := 6.0, math.Pi/2.2
	p := [4]float64{-1, -0.4, 0.01, 3.0}

	// Express the same physical momentum in Kerr-Schild coordinates:
	// p_r^KS = p_r^BL + (2MrE - a L_z)/Delta, with p_t and p_phi unchanged.
	a := spin * mass
	delta := r*r - 2*mass*r + a*a
	pKS := p
	pKS[1] = p[1] + (2*mass*r*(-p[0])-a*p[3])/delta

	hBL := 0.5 * bl.Contravariant(r, theta).Contract(p)
	hKS := 0.5 * ks.Contravariant(r, theta).Contract(pKS)

	if math.Abs(hBL-hKS) > 1e-6 {
		t.Fatalf("|H_BL - H_KS| = %v at shared (r, theta, p), want near-zero under matching momentum", math.Abs(hBL-hKS))
	}
}

func TestKerrFrameDraggingEquatorMatchesGeneral(t *testing.T) {
	k := NewKerr(1.0, 0.7)
	r := 5.0
	general := k.FrameDragging(r, math.Pi/2)
	shortcut := k.FrameDraggingEquator(r)
	if !floats.EqualWithinAbs(general, shortcut, 1e-9) {
		t.Fatalf("FrameDragging(equator) = %v, FrameDraggingEquator = %v", general, shortcut)
	}
}

func TestKerrCircularOrbitAngularVelocityPositive(t *testing.T) {
	k := NewKerr(1.0, 0.5)
	omega := k.CircularOrbitAngularVelocity(10.0)
	if omega <= 0 {
		t.Fatalf("CircularOrbitAngularVelocity = %v, want > 0", omega)
	}
}
