// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Crossover policy names accepted by reproduction.crossover.
const (
	CrossoverConcat    = "concat"
	CrossoverAlternate = "alternate"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Field        FieldConfig        `yaml:"field"`
	Population   PopulationConfig   `yaml:"population"`
	Genome       GenomeConfig       `yaml:"genome"`
	Phenotype    PhenotypeConfig    `yaml:"phenotype"`
	Motion       MotionConfig       `yaml:"motion"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Clock        ClockConfig        `yaml:"clock"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds the square terrain grid parameters.
type FieldConfig struct {
	Size     int     `yaml:"size"`      // Cells per side; organisms live in [0, size-1]
	MaxLevel float64 `yaml:"max_level"` // Terrain level is uniform in [0, max_level)
}

// PopulationConfig holds population sizing.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"` // Hard cap; growth beyond it fails with ErrCapacityExceeded
}

// GenomeConfig holds random genome generation parameters.
type GenomeConfig struct {
	MaxLength int `yaml:"max_length"` // Random genomes have length in [1, max_length]
}

// PhenotypeConfig holds trait clamp limits.
type PhenotypeConfig struct {
	ViewAngleMaxPi float64 `yaml:"view_angle_max_pi"` // viewAngle max as a multiple of pi
	ViewRangeMax   float64 `yaml:"view_range_max"`
}

// MotionConfig holds per-tick movement and steering parameters.
type MotionConfig struct {
	MaxSpeed  float64 `yaml:"max_speed"`  // Speed is uniform in [0, max_speed) per tick
	JitterPi  float64 `yaml:"jitter_pi"`  // Heading jitter is uniform in [-jitter, +jitter) * pi
	SteerGain float64 `yaml:"steer_gain"` // Max heading nudge per visible neighbor
	BodySize  float64 `yaml:"body_size"`  // Contact distance is the sum of both sizes
}

// ReproductionConfig holds interaction / offspring parameters.
type ReproductionConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Crossover     string  `yaml:"crossover"`      // "concat" or "alternate"
	CooldownTicks int     `yaml:"cooldown_ticks"` // Ticks a parent waits after a birth (0 = none)
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Child distance from the parents' midpoint
}

// ClockConfig holds the real-time tick scheduler parameters.
type ClockConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ViewAngleMax float64       // Phenotype.ViewAngleMaxPi * pi
	Jitter       float64       // Motion.JitterPi * pi
	TickPeriod   time.Duration // Clock.PeriodMS as a duration
	FieldMax     float64       // Field.Size - 1, the high-side position bound
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ComputeDerived()

	return cfg, nil
}

// Default returns the embedded defaults. Panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Field.Size < 2 {
		return fmt.Errorf("field.size must be at least 2, got %d", c.Field.Size)
	}
	if c.Population.Max < 0 || c.Population.Initial < 0 {
		return fmt.Errorf("population sizes must not be negative")
	}
	if c.Population.Initial > c.Population.Max {
		return fmt.Errorf("population.initial (%d) exceeds population.max (%d)",
			c.Population.Initial, c.Population.Max)
	}
	if c.Genome.MaxLength < 1 {
		return fmt.Errorf("genome.max_length must be positive, got %d", c.Genome.MaxLength)
	}
	if c.Phenotype.ViewAngleMaxPi < 0 || c.Phenotype.ViewRangeMax < 0 {
		return fmt.Errorf("phenotype limits must not be negative")
	}
	switch c.Reproduction.Crossover {
	case CrossoverConcat, CrossoverAlternate:
	default:
		return fmt.Errorf("unknown reproduction.crossover %q", c.Reproduction.Crossover)
	}
	if c.Clock.PeriodMS <= 0 {
		return fmt.Errorf("clock.period_ms must be positive, got %d", c.Clock.PeriodMS)
	}
	return nil
}

// ComputeDerived calculates values derived from loaded config.
// Call it again after mutating a loaded Config.
func (c *Config) ComputeDerived() {
	c.Derived.ViewAngleMax = c.Phenotype.ViewAngleMaxPi * math.Pi
	c.Derived.Jitter = c.Motion.JitterPi * math.Pi
	c.Derived.TickPeriod = time.Duration(c.Clock.PeriodMS) * time.Millisecond
	c.Derived.FieldMax = float64(c.Field.Size - 1)

	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
