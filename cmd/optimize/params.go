// Package main provides CMA-ES search over motion and reproduction
// parameters for long, diverse lineages.
package main

import (
	"math"

	"github.com/pthm-cable/codonlife/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Motion
			{Name: "max_speed", Path: "motion.max_speed", Min: 0.1, Max: 2.0, Default: 0.5},
			{Name: "jitter_pi", Path: "motion.jitter_pi", Min: 0.0, Max: 0.1, Default: 0.015},
			{Name: "steer_gain", Path: "motion.steer_gain", Min: 0.0, Max: 1.0, Default: 0.3},
			{Name: "body_size", Path: "motion.body_size", Min: 0.5, Max: 3.0, Default: 1.0},
			// Reproduction
			{Name: "cooldown_ticks", Path: "reproduction.cooldown_ticks", Min: 0, Max: 1000, Default: 200},
			{Name: "spawn_offset", Path: "reproduction.spawn_offset", Min: 1.0, Max: 10.0, Default: 3.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig applies parameter values to cfg and refreshes its
// derived values. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Motion.MaxSpeed = clamped[0]
	cfg.Motion.JitterPi = clamped[1]
	cfg.Motion.SteerGain = clamped[2]
	cfg.Motion.BodySize = clamped[3]
	cfg.Reproduction.CooldownTicks = int(math.Round(clamped[4]))
	cfg.Reproduction.SpawnOffset = clamped[5]

	cfg.ComputeDerived()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Motion.MaxSpeed,
		cfg.Motion.JitterPi,
		cfg.Motion.SteerGain,
		cfg.Motion.BodySize,
		float64(cfg.Reproduction.CooldownTicks),
		cfg.Reproduction.SpawnOffset,
	}
}
