package gravitas

import (
	"math"
	"testing"
)

func TestChristoffelSymbolsSymmetricInLowerIndices(t *testing.T) {
	metric := NewKerr(1.0, 0.9)
	gamma := ChristoffelSymbols(metric, 8.0, 1.1, 1e-6)

	for alpha := 0; alpha < 4; alpha++ {
		for mu := 0; mu < 4; mu++ {
			for nu := mu + 1; nu < 4; nu++ {
				diff := math.Abs(gamma[alpha][mu][nu] - gamma[alpha][nu][mu])
				if diff > 1e-6 {
					t.Fatalf("Gamma^%d_%d%d = %v, Gamma^%d_%d%d = %v, want equal", alpha, mu, nu, gamma[alpha][mu][nu], alpha, nu, mu, gamma[alpha][nu][mu])
				}
			}
		}
	}
}

func TestChristoffelSymbolsVanishInFlatSpacetime(t *testing.T) {
	metric := NewMinkowski()
	gamma := ChristoffelSymbols(metric, 10.0, math.Pi/2, 1e-6)

	// At theta = pi/2, the only nonzero flat-space Christoffel symbols
	// involve the angular sector (Gamma^r_thth = -r, Gamma^th_rth = 1/r,
	// etc.); the purely radial/temporal ones must vanish.
	if math.Abs(gamma[R][T][T]) > 1e-4 {
		t.Fatalf("Gamma^r_tt = %v in flat spacetime, want 0", gamma[R][T][T])
	}
	if math.Abs(gamma[T][T][R]) > 1e-4 {
		t.Fatalf("Gamma^t_tr = %v in flat spacetime, want 0", gamma[T][T][R])
	}
}
