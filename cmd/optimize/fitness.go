package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/sim"
	"github.com/pthm-cable/codonlife/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int64
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 200,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	saturationTick int64 // first tick at capacity (maxTicks if never reached)
	maxGeneration  int
	windowStats    []telemetry.WindowStats
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result, err := fe.runSimulation(x, s)
			if err != nil {
				slog.Warn("run failed", "seed", s, "error", err)
				return
			}
			results[idx] = seedResult{
				fitness: fe.computeFitness(result),
				quality: computeQuality(result.windowStats),
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run for maxTicks ticks.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (*runResult, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	s, err := sim.New(cfg, sim.Options{Seed: seed, StatsWindow: fe.statsWindow})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	result := &runResult{saturationTick: fe.maxTicks}
	capacity := cfg.Population.Max
	for s.Tick() < fe.maxTicks {
		s.Step()

		if s.Len() >= capacity && result.saturationTick == fe.maxTicks {
			result.saturationTick = s.Tick()
		}
		if s.Tick()%int64(fe.statsWindow) == 0 {
			stats := s.Stats()
			result.windowStats = append(result.windowStats, stats)
			if stats.MaxGeneration > result.maxGeneration {
				result.maxGeneration = stats.MaxGeneration
			}
		}
	}
	return result, nil
}

// copyConfig returns an independent copy of the base config.
// Config holds no reference types, so a value copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(maxGeneration × (0.5 + 0.5 × saturation) × (1 + 0.2 × quality))
// where saturation is the fraction of the run spent below capacity.
// Deep lineages dominate; filling the field early halves the score.
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	saturation := float64(r.saturationTick) / float64(fe.maxTicks)
	quality := computeQuality(r.windowStats)
	return -(float64(r.maxGeneration) * (0.5 + 0.5*saturation) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightGenome = 0.5
	qualityWeightRange  = 0.3
	qualityWeightBirths = 0.2

	qualityWarmupWindows = 2 // skip first N windows
	qualityMinPop        = 3 // exclude windows below this population
)

// computeQuality scores trait diversity in [0, 1] from window stats.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}

	var genomeCV, rangeSpread, births []float64
	for _, w := range windows[qualityWarmupWindows:] {
		if w.Population < qualityMinPop {
			continue
		}
		if w.GenomeLenMean > 0 {
			genomeCV = append(genomeCV, w.GenomeLenStd/w.GenomeLenMean)
		}
		rangeSpread = append(rangeSpread, w.ViewRangeStd)
		births = append(births, float64(w.Births))
	}
	if len(births) == 0 {
		return 0
	}

	genomeScore := 0.0
	if len(genomeCV) > 0 {
		genomeScore = 1 - math.Exp(-stat.Mean(genomeCV, nil))
	}
	rangeScore := 1 - math.Exp(-stat.Mean(rangeSpread, nil)/10)

	// Steady birth counts score higher than bursts
	birthScore := 0.0
	if mean, std := stat.PopMeanStdDev(births, nil); mean > 0 {
		birthScore = math.Exp(-std / mean)
	}

	quality := qualityWeightGenome*genomeScore +
		qualityWeightRange*rangeScore +
		qualityWeightBirths*birthScore
	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
