// Package telemetry collects windowed population statistics, tick timings
// and bookmarks, and writes them as experiment output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end
	Population    int `csv:"population"`
	MaxGeneration int `csv:"max_generation"`

	// Events during window
	Births           int   `csv:"births"`
	Contacts         int   `csv:"contacts"`
	Incompatible     int   `csv:"incompatible"`
	CooldownBlocked  int   `csv:"cooldown_blocked"`
	CapacityRejected int   `csv:"capacity_rejected"`
	SkippedTicks     int64 `csv:"skipped_ticks"`

	// Trait distribution (sampled at window end)
	ViewRangeMean float64 `csv:"view_range_mean"`
	ViewRangeStd  float64 `csv:"view_range_std"`
	ViewRangeP50  float64 `csv:"view_range_p50"`
	ViewAngleMean float64 `csv:"view_angle_mean"`
	ViewAngleStd  float64 `csv:"view_angle_std"`

	GenomeLenMean float64 `csv:"genome_len_mean"`
	GenomeLenStd  float64 `csv:"genome_len_std"`
	GenomeLenP10  float64 `csv:"genome_len_p10"`
	GenomeLenP50  float64 `csv:"genome_len_p50"`
	GenomeLenP90  float64 `csv:"genome_len_p90"`

	// Mean displayed color
	ColorR float64 `csv:"color_r"`
	ColorG float64 `csv:"color_g"`
	ColorB float64 `csv:"color_b"`

	// Mean terrain height under organisms
	HeightMean float64 `csv:"height_mean"`
}

// Distribution summarizes a sample of values.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistribution returns mean, population standard deviation and
// percentiles of values. The input is not modified.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	mean, std := stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("population", s.Population),
		slog.Int("max_generation", s.MaxGeneration),
		slog.Int("births", s.Births),
		slog.Int("contacts", s.Contacts),
		slog.Int("incompatible", s.Incompatible),
		slog.Int("cooldown_blocked", s.CooldownBlocked),
		slog.Int("capacity_rejected", s.CapacityRejected),
		slog.Int64("skipped_ticks", s.SkippedTicks),
		slog.Float64("view_range_mean", s.ViewRangeMean),
		slog.Float64("view_range_std", s.ViewRangeStd),
		slog.Float64("view_range_p50", s.ViewRangeP50),
		slog.Float64("view_angle_mean", s.ViewAngleMean),
		slog.Float64("view_angle_std", s.ViewAngleStd),
		slog.Float64("genome_len_mean", s.GenomeLenMean),
		slog.Float64("genome_len_std", s.GenomeLenStd),
		slog.Float64("genome_len_p10", s.GenomeLenP10),
		slog.Float64("genome_len_p50", s.GenomeLenP50),
		slog.Float64("genome_len_p90", s.GenomeLenP90),
		slog.Float64("color_r", s.ColorR),
		slog.Float64("color_g", s.ColorG),
		slog.Float64("color_b", s.ColorB),
		slog.Float64("height_mean", s.HeightMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"population", s.Population,
		"max_generation", s.MaxGeneration,
		"births", s.Births,
		"contacts", s.Contacts,
		"incompatible", s.Incompatible,
		"cooldown_blocked", s.CooldownBlocked,
		"capacity_rejected", s.CapacityRejected,
		"skipped_ticks", s.SkippedTicks,
		"view_range_mean", s.ViewRangeMean,
		"view_angle_mean", s.ViewAngleMean,
		"genome_len_mean", s.GenomeLenMean,
		"genome_len_std", s.GenomeLenStd,
		"height_mean", s.HeightMean,
	)
}
