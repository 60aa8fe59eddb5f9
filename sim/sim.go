// Package sim runs the organism simulation: the organism store, the
// per-tick step, interactions between organisms and the kernel surface
// used by the viewer.
package sim

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codonlife/components"
	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/genetics"
	"github.com/pthm-cable/codonlife/systems"
	"github.com/pthm-cable/codonlife/telemetry"
)

// Options configures a Simulation beyond the loaded config.
type Options struct {
	Seed        int64  // RNG seed
	LogStats    bool   // Log window stats and bookmarks via slog
	OutputDir   string // Directory for CSV output (empty = disabled)
	StatsWindow int    // Ticks per stats window (0 = use config)
	SnapshotDir string // Directory for bookmark snapshots (empty = disabled)
}

// Simulation owns all simulation state. It is not safe for concurrent
// use; Kernel adds locking and scheduling.
type Simulation struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64
	tick int64

	field      *systems.Field
	store      *Store
	perception *systems.PerceptionSystem
	ribosome   genetics.Ribosome
	crossover  genetics.CrossoverPolicy

	target  int     // last requested population target
	pending []Spawn // offspring waiting for the end of the motion pass

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	lifetimes     *telemetry.LifetimeTracker
	snapshotDir   string
	logStats      bool
	lastStats     telemetry.WindowStats
}

// New creates a simulation with a random field and the configured initial
// population of random organisms.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	crossover, err := genetics.ParseCrossover(cfg.Reproduction.Crossover)
	if err != nil {
		return nil, err
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	store := NewStore(cfg.Population.Max)

	s := &Simulation{
		cfg:           cfg,
		rng:           rng,
		seed:          opts.Seed,
		field:         systems.NewField(cfg.Field.Size, cfg.Field.MaxLevel, rng),
		store:         store,
		perception:    systems.NewPerceptionSystem(store.World(), cfg),
		ribosome:      genetics.NewRibosome(cfg.Derived.ViewAngleMax, cfg.Phenotype.ViewRangeMax),
		crossover:     crossover,
		collector:     telemetry.NewCollector(statsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarks:     telemetry.NewBookmarkDetector(cfg.Population.Max, 10),
		outputManager: outputManager,
		lifetimes:     telemetry.NewLifetimeTracker(),
		snapshotDir:   opts.SnapshotDir,
		logStats:      opts.LogStats,
	}

	if err := s.SetPopulationTarget(cfg.Population.Initial); err != nil {
		outputManager.Close()
		return nil, err
	}
	return s, nil
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() {
	s.perfCollector.StartTick()

	s.perfCollector.StartPhase(telemetry.PhaseUpkeep)
	s.field.UpdateSmell()
	s.updateCooldowns()

	s.perfCollector.StartPhase(telemetry.PhaseMotion)
	s.perception.Update(s.store.Order(), s.rng, s.interact)

	s.perfCollector.StartPhase(telemetry.PhaseBirths)
	s.insertPending()

	s.tick++

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	s.perfCollector.EndTick()
}

// updateCooldowns counts reproduction cooldowns down by one tick.
func (s *Simulation) updateCooldowns() {
	for _, e := range s.store.Order() {
		org := s.store.orgMap.Get(e)
		if org.ReproCooldown > 0 {
			org.ReproCooldown--
		}
	}
}

// Create expresses genome and inserts the organism at a random position
// with a random heading.
func (s *Simulation) Create(genome genetics.Genome) (ecs.Entity, error) {
	x, y := s.randomPosition()
	return s.insert(Spawn{
		Pos:       components.Position{X: x, Y: y},
		Heading:   s.randomHeading(),
		Genome:    genome,
		Phenotype: s.ribosome.Express(genome),
	})
}

// insert adds sp to the store and starts its lifetime record.
func (s *Simulation) insert(sp Spawn) (ecs.Entity, error) {
	e, err := s.store.Insert(sp, s.tick)
	if err != nil {
		return e, err
	}
	s.lifetimes.Register(s.store.orgMap.Get(e).ID, s.tick, sp.Generation, sp.Parents)
	return e, nil
}

// CreateRandom creates an organism with a random genome.
func (s *Simulation) CreateRandom() (ecs.Entity, error) {
	return s.Create(genetics.RandomGenome(s.rng, s.cfg.Genome.MaxLength))
}

// Organisms returns copies of all organisms in creation order.
func (s *Simulation) Organisms() []OrganismView {
	views := s.store.Views()
	for i := range views {
		s.withLifetime(&views[i])
	}
	return views
}

// Organism returns a copy of one organism.
func (s *Simulation) Organism(e ecs.Entity) OrganismView {
	v := s.store.View(e)
	s.withLifetime(&v)
	return v
}

func (s *Simulation) withLifetime(v *OrganismView) {
	if lt := s.lifetimes.Get(v.ID); lt != nil {
		v.Contacts = lt.Contacts
		v.Children = lt.Children
	}
}

// Lifetimes returns the per-organism lifetime tracker.
func (s *Simulation) Lifetimes() *telemetry.LifetimeTracker {
	return s.lifetimes
}

// Len returns the population size.
func (s *Simulation) Len() int {
	return s.store.Len()
}

// Field returns a copy of the terrain grid.
func (s *Simulation) Field() FieldView {
	return FieldView{Size: s.field.Size(), Levels: s.field.Levels()}
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int64 {
	return s.tick
}

// Stats returns the most recently flushed window stats.
func (s *Simulation) Stats() telemetry.WindowStats {
	return s.lastStats
}

// Perf returns timing statistics over the recent ticks.
func (s *Simulation) Perf() telemetry.PerfStats {
	return s.perfCollector.Stats()
}

// RecordFrame notes that the viewer drew a frame.
func (s *Simulation) RecordFrame() {
	s.perfCollector.RecordFrame()
}

// RecordSkippedTicks adds ticks dropped by the scheduler to the current
// stats window.
func (s *Simulation) RecordSkippedTicks(n int64) {
	s.collector.RecordSkippedTicks(n)
	slog.Debug("ticks skipped", "count", n, "tick", s.tick)
}

// Config returns the simulation config.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Close flushes and closes experiment output.
func (s *Simulation) Close() error {
	return s.outputManager.Close()
}

func (s *Simulation) randomPosition() (float64, float64) {
	hi := s.cfg.Derived.FieldMax
	return s.rng.Float64() * hi, s.rng.Float64() * hi
}

func (s *Simulation) randomHeading() float64 {
	return systems.WrapHeading(s.rng.Float64()*2*math.Pi - math.Pi)
}
