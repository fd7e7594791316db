package integrator

import (
	"math"

	"github.com/steeltroops-ai/gravitas"
)

// TerminationReason explains why a trajectory stopped integrating.
type TerminationReason int

const (
	// None indicates the trajectory has not yet terminated; never seen
	// on a returned Trajectory.
	None TerminationReason = iota
	// Horizon indicates the ray fell within the event horizon.
	Horizon
	// Escape indicates the ray reached the configured escape radius.
	Escape
	// MaxSteps indicates the step budget was exhausted without the ray
	// crossing either boundary.
	MaxSteps
	// DiskCrossing is reserved for a future disk-intersection hook and
	// is never emitted by Integrate.
	DiskCrossing
)

func (r TerminationReason) String() string {
	switch r {
	case None:
		return "None"
	case Horizon:
		return "Horizon"
	case Escape:
		return "Escape"
	case MaxSteps:
		return "MaxSteps"
	case DiskCrossing:
		return "DiskCrossing"
	default:
		return "Unknown"
	}
}

// Method selects which stepper Integrate uses to advance a trajectory.
type Method int

const (
	// MethodAdaptiveRKF45 uses the embedded Runge-Kutta-Fehlberg 4(5)
	// pair under an AdaptiveStepper, adjusting its own step size.
	MethodAdaptiveRKF45 Method = iota
	// MethodRK4 uses a fixed-step classical 4th-order Runge-Kutta.
	MethodRK4
	// MethodSymplectic uses the fixed-step implicit-midpoint stepper.
	MethodSymplectic
)

// IntegrationOptions configures a single Integrate call.
type IntegrationOptions struct {
	Method              Method
	Tolerance           float64
	InitialStep         float64
	MaxSteps            int
	EscapeRadius        float64
	RenormalizeInterval int
	RecordPath          bool
}

// DefaultOptions returns the adaptive RKF45 configuration used throughout
// the reference test scenarios: tolerance 1e-8, initial step 0.01, 10000
// step budget, escape radius 1000, renormalizing every 10 steps.
func DefaultOptions() IntegrationOptions {
	return IntegrationOptions{
		Method:              MethodAdaptiveRKF45,
		Tolerance:           1e-8,
		InitialStep:         0.01,
		MaxSteps:            10000,
		EscapeRadius:        1000.0,
		RenormalizeInterval: gravitas.RenormalizeIntervalDefault,
		RecordPath:          false,
	}
}

// Trajectory is the result of driving a geodesic to termination: the final
// state, why it stopped, how many steps were taken, the largest |H|
// observed along the way (a drift diagnostic — should stay near the
// integrator's tolerance), and, if requested, the full recorded path.
type Trajectory struct {
	Final    gravitas.GeodesicState
	Reason   TerminationReason
	Steps    int
	MaxDrift float64
	Path     []gravitas.GeodesicState
}

// Integrate drives initial along a null geodesic in metric until it
// crosses the event horizon, escapes to EscapeRadius, or exhausts
// MaxSteps, following the configured method.
//
// Termination is checked before each step against the incoming state, so
// Trajectory.Final always satisfies the termination predicate that ended
// the run (or is the last state reached on MaxSteps fall-through).
// Renormalization onto the null surface happens once up front and then
// every RenormalizeInterval accepted steps.
func Integrate(initial gravitas.GeodesicState, metric gravitas.Metric, opts IntegrationOptions) Trajectory {
	state := initial
	gravitas.RenormalizeNull(&state, metric)

	stepper := NewAdaptiveStepper(opts.Tolerance)
	h := opts.InitialStep
	horizon := metric.EventHorizon()

	var maxDrift float64
	var path []gravitas.GeodesicState
	if opts.RecordPath {
		path = make([]gravitas.GeodesicState, 0, opts.MaxSteps)
	}

	for step := 0; step < opts.MaxSteps; step++ {
		r := state.Radius()
		if r < horizon*1.001 {
			return Trajectory{Final: state, Reason: Horizon, Steps: step, MaxDrift: maxDrift, Path: path}
		}
		if r > opts.EscapeRadius {
			return Trajectory{Final: state, Reason: Escape, Steps: step, MaxDrift: maxDrift, Path: path}
		}

		switch opts.Method {
		case MethodAdaptiveRKF45:
			h = stepper.Step(&state, metric, h)
		case MethodRK4:
			StepRK4(&state, metric, h)
		case MethodSymplectic:
			StepSymplectic(&state, metric, h)
		}

		if opts.RenormalizeInterval > 0 && (step+1)%opts.RenormalizeInterval == 0 {
			gravitas.RenormalizeNull(&state, metric)
		}

		drift := math.Abs(gravitas.Hamiltonian(state, metric))
		if drift > maxDrift {
			maxDrift = drift
		}

		if opts.RecordPath {
			path = append(path, state)
		}
	}

	return Trajectory{Final: state, Reason: MaxSteps, Steps: opts.MaxSteps, MaxDrift: maxDrift, Path: path}
}
