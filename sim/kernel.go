package sim

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pthm-cable/codonlife/clock"
	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/genetics"
	"github.com/pthm-cable/codonlife/telemetry"
)

// Kernel is the simulation surface used by the viewer and the CLI. It
// schedules ticks on a clock and guards the simulation with a lock so
// readers always see a completed tick.
type Kernel struct {
	mu          sync.RWMutex
	sim         *Simulation
	clock       *clock.Clock
	lastSkipped int64
}

// NewKernel creates a stopped kernel.
func NewKernel(cfg *config.Config, opts Options) (*Kernel, error) {
	s, err := New(cfg, opts)
	if err != nil {
		return nil, err
	}
	k := &Kernel{sim: s}
	k.clock = clock.New(cfg.Derived.TickPeriod, k.tick)
	return k, nil
}

func (k *Kernel) tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if skipped := k.clock.Skipped(); skipped > k.lastSkipped {
		k.sim.RecordSkippedTicks(skipped - k.lastSkipped)
		k.lastSkipped = skipped
	}
	k.sim.Step()
}

// Start begins ticking at the configured period. No-op when running.
func (k *Kernel) Start() {
	if k.clock.Running() {
		return
	}
	k.clock.Start()
	slog.Info("simulation started", "tick", k.Tick())
}

// Stop halts ticking. Start resumes from the same state.
func (k *Kernel) Stop() {
	if !k.clock.Running() {
		return
	}
	k.clock.Stop()
	slog.Info("simulation stopped", "tick", k.Tick())
}

// IsRunning reports whether ticks are scheduled.
func (k *Kernel) IsRunning() bool {
	return k.clock.Running()
}

// Step runs one tick synchronously. It returns false if a scheduled tick
// was executing at the time, in which case nothing happens.
func (k *Kernel) Step() bool {
	return k.clock.Tick()
}

// Organisms returns a snapshot of all organisms in creation order.
func (k *Kernel) Organisms() []OrganismView {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Organisms()
}

// Field returns a snapshot of the terrain grid.
func (k *Kernel) Field() FieldView {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Field()
}

// SetPopulationTarget grows the population to n random organisms.
func (k *Kernel) SetPopulationTarget(n int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sim.SetPopulationTarget(n)
}

// PopulationTarget returns the last requested population target.
func (k *Kernel) PopulationTarget() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.PopulationTarget()
}

// CreateOrganism parses a genome string such as "augugaaaa" and adds the
// organism it encodes. Nothing is added on error.
func (k *Kernel) CreateOrganism(genome string) (OrganismView, error) {
	g, err := genetics.ParseGenome(genome)
	if err != nil {
		slog.Debug("organism creation failed", "error", err)
		return OrganismView{}, fmt.Errorf("creating organism: %w", err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	e, err := k.sim.Create(g)
	if err != nil {
		slog.Debug("organism creation failed", "error", err)
		return OrganismView{}, fmt.Errorf("creating organism: %w", err)
	}
	return k.sim.Organism(e), nil
}

// Len returns the population size.
func (k *Kernel) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Len()
}

// Tick returns the number of completed ticks.
func (k *Kernel) Tick() int64 {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Tick()
}

// Stats returns the most recently flushed window stats.
func (k *Kernel) Stats() telemetry.WindowStats {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Stats()
}

// Perf returns recent tick timings.
func (k *Kernel) Perf() telemetry.PerfStats {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.sim.Perf()
}

// RecordFrame notes that the viewer drew a frame, for the perf window.
func (k *Kernel) RecordFrame() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.sim.RecordFrame()
}

// Skipped returns how many scheduled ticks were dropped because the
// previous tick was still running.
func (k *Kernel) Skipped() int64 {
	return k.clock.Skipped()
}

// MaxPopulation returns the population capacity.
func (k *Kernel) MaxPopulation() int {
	return k.sim.cfg.Population.Max
}

// SaveSnapshot writes the current population to dir and returns the file
// path.
func (k *Kernel) SaveSnapshot(dir string) (string, error) {
	k.mu.RLock()
	snap := k.sim.Snapshot(nil)
	k.mu.RUnlock()
	return telemetry.SaveSnapshot(snap, dir)
}

// Close stops the clock and closes experiment output.
func (k *Kernel) Close() error {
	k.Stop()
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sim.Close()
}
