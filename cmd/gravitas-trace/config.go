package main

import (
	"github.com/spf13/viper"
	"github.com/steeltroops-ai/gravitas/integrator"
)

// RunConfig is the parsed shape of a trace run, loaded from a TOML/YAML/
// JSON config file via viper (any format viper's codec registry
// understands) with code-level defaults for every field.
type RunConfig struct {
	Mass         float64
	SpinStar     float64
	Chart        string // "boyer-lindquist", "kerr-schild", "schwarzschild" or "minkowski"
	Method       string // "adaptive", "rk4", "symplectic"
	Tolerance    float64
	InitialStep  float64
	MaxSteps     int
	EscapeRadius float64
	RayCount     int
	OutputDir    string
	ExportJSON   bool
}

// LoadConfig reads "gravitas.{yaml,toml,json}" from confPath (falling back
// to defaults for anything unset or on a missing file, the same tolerant
// posture the teacher's mission config loader takes toward SPICE.* keys).
func LoadConfig(confPath string) RunConfig {
	viper.SetConfigName("gravitas")
	viper.AddConfigPath(confPath)
	_ = viper.ReadInConfig() // missing config file falls through to defaults

	cfg := RunConfig{
		Mass:         1.0,
		SpinStar:     0.9,
		Chart:        "boyer-lindquist",
		Method:       "adaptive",
		Tolerance:    1e-8,
		InitialStep:  0.01,
		MaxSteps:     10000,
		EscapeRadius: 1000.0,
		RayCount:     64,
		OutputDir:    "./trace-output",
		ExportJSON:   false,
	}

	if v := viper.GetFloat64("spacetime.mass"); v != 0 {
		cfg.Mass = v
	}
	if viper.IsSet("spacetime.spin") {
		cfg.SpinStar = viper.GetFloat64("spacetime.spin")
	}
	if v := viper.GetString("spacetime.chart"); v != "" {
		cfg.Chart = v
	}
	if v := viper.GetString("integration.method"); v != "" {
		cfg.Method = v
	}
	if v := viper.GetFloat64("integration.tolerance"); v != 0 {
		cfg.Tolerance = v
	}
	if v := viper.GetFloat64("integration.initial_step"); v != 0 {
		cfg.InitialStep = v
	}
	if v := viper.GetInt("integration.max_steps"); v != 0 {
		cfg.MaxSteps = v
	}
	if v := viper.GetFloat64("integration.escape_radius"); v != 0 {
		cfg.EscapeRadius = v
	}
	if v := viper.GetInt("batch.ray_count"); v != 0 {
		cfg.RayCount = v
	}
	if v := viper.GetString("output.directory"); v != "" {
		cfg.OutputDir = v
	}
	cfg.ExportJSON = viper.GetBool("output.json")

	return cfg
}

// IntegratorMethod maps the config's method name onto an integrator.Method,
// defaulting to the adaptive RKF45 driver for an unrecognized value.
func (c RunConfig) IntegratorMethod() integrator.Method {
	switch c.Method {
	case "rk4":
		return integrator.MethodRK4
	case "symplectic":
		return integrator.MethodSymplectic
	default:
		return integrator.MethodAdaptiveRKF45
	}
}

// Options builds the integrator.IntegrationOptions this config describes.
func (c RunConfig) Options(recordPath bool) integrator.IntegrationOptions {
	return integrator.IntegrationOptions{
		Method:              c.IntegratorMethod(),
		Tolerance:           c.Tolerance,
		InitialStep:         c.InitialStep,
		MaxSteps:            c.MaxSteps,
		EscapeRadius:        c.EscapeRadius,
		RenormalizeInterval: 10,
		RecordPath:          recordPath,
	}
}
