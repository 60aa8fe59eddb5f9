package telemetry

import "gonum.org/v1/gonum/floats"

// PopulationSample holds per-organism values sampled at window end.
// All slices have one entry per live organism.
type PopulationSample struct {
	ViewRange    []float64
	ViewAngle    []float64
	GenomeLength []float64
	Generation   []float64
	Height       []float64
	ColorR       []float64
	ColorG       []float64
	ColorB       []float64
}

// NewPopulationSample creates an empty sample with room for n organisms.
func NewPopulationSample(n int) PopulationSample {
	return PopulationSample{
		ViewRange:    make([]float64, 0, n),
		ViewAngle:    make([]float64, 0, n),
		GenomeLength: make([]float64, 0, n),
		Generation:   make([]float64, 0, n),
		Height:       make([]float64, 0, n),
		ColorR:       make([]float64, 0, n),
		ColorG:       make([]float64, 0, n),
		ColorB:       make([]float64, 0, n),
	}
}

// Len returns the number of sampled organisms.
func (p PopulationSample) Len() int {
	return len(p.GenomeLength)
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	// Event counters for current window
	births           int
	contacts         int
	incompatible     int
	cooldownBlocked  int
	capacityRejected int
	skippedTicks     int64
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// RecordContact records a proximity contact between two organisms.
func (c *Collector) RecordContact() {
	c.contacts++
}

// RecordIncompatible records a contact whose genomes could not pair.
func (c *Collector) RecordIncompatible() {
	c.incompatible++
}

// RecordCooldown records a compatible contact blocked by a cooldown.
func (c *Collector) RecordCooldown() {
	c.cooldownBlocked++
}

// RecordBirth records an offspring inserted into the population.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordCapacityRejected records an organism dropped at the population cap.
func (c *Collector) RecordCapacityRejected() {
	c.capacityRejected++
}

// RecordSkippedTicks records ticks dropped by the scheduler guard.
func (c *Collector) RecordSkippedTicks(n int64) {
	c.skippedTicks += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, sample PopulationSample) WindowStats {
	viewRange := ComputeDistribution(sample.ViewRange)
	viewAngle := ComputeDistribution(sample.ViewAngle)
	genomeLen := ComputeDistribution(sample.GenomeLength)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Population: sample.Len(),

		Births:           c.births,
		Contacts:         c.contacts,
		Incompatible:     c.incompatible,
		CooldownBlocked:  c.cooldownBlocked,
		CapacityRejected: c.capacityRejected,
		SkippedTicks:     c.skippedTicks,

		ViewRangeMean: viewRange.Mean,
		ViewRangeStd:  viewRange.Std,
		ViewRangeP50:  viewRange.P50,
		ViewAngleMean: viewAngle.Mean,
		ViewAngleStd:  viewAngle.Std,

		GenomeLenMean: genomeLen.Mean,
		GenomeLenStd:  genomeLen.Std,
		GenomeLenP10:  genomeLen.P10,
		GenomeLenP50:  genomeLen.P50,
		GenomeLenP90:  genomeLen.P90,

		ColorR:     mean(sample.ColorR),
		ColorG:     mean(sample.ColorG),
		ColorB:     mean(sample.ColorB),
		HeightMean: mean(sample.Height),
	}
	if len(sample.Generation) > 0 {
		stats.MaxGeneration = int(floats.Max(sample.Generation))
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = 0
	c.contacts = 0
	c.incompatible = 0
	c.cooldownBlocked = 0
	c.capacityRejected = 0
	c.skippedTicks = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}
