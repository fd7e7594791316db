package integrator

import (
	"math"
	"testing"

	"github.com/steeltroops-ai/gravitas"
)

func TestAdaptiveStepperGrowsOnEasyTolerance(t *testing.T) {
	metric := gravitas.NewKerr(1.0, 0.9)
	state := gravitas.NewGeodesicState(0, 50, math.Pi/2, 0, -1, -1, 0, 3.5)
	gravitas.RenormalizeNull(&state, metric)

	stepper := NewAdaptiveStepper(1e-3)
	next := stepper.Step(&state, metric, 0.01)

	if next <= 0.01 {
		t.Fatalf("expected step growth under a loose tolerance far from the horizon, got next h = %v from h_try = 0.01", next)
	}
}

func TestAdaptiveStepperClampsToMaxStep(t *testing.T) {
	metric := gravitas.NewKerr(1.0, 0.9)
	state := gravitas.NewGeodesicState(0, 1000, math.Pi/2, 0, -1, -1, 0, 3.5)
	gravitas.RenormalizeNull(&state, metric)

	stepper := NewAdaptiveStepper(1.0)
	next := stepper.Step(&state, metric, 50.0)

	if math.Abs(next) > stepper.MaxStep+1e-12 {
		t.Fatalf("next step %v exceeds MaxStep %v", next, stepper.MaxStep)
	}
}

func TestAdaptiveRKF45StepErrorEstimateShrinksWithStepSize(t *testing.T) {
	metric := gravitas.NewKerr(1.0, 0.9)
	state := gravitas.NewGeodesicState(0, 20, math.Pi/2, 0, -1, -1, 0, 3.5)
	gravitas.RenormalizeNull(&state, metric)

	_, errLarge := AdaptiveRKF45Step(state, metric, 1.0)
	_, errSmall := AdaptiveRKF45Step(state, metric, 0.01)

	if errSmall >= errLarge {
		t.Fatalf("error estimate at h=0.01 (%v) did not shrink relative to h=1.0 (%v)", errSmall, errLarge)
	}
}
