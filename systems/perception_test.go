package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codonlife/components"
	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/genetics"
)

type testWorld struct {
	world  *ecs.World
	mapper *ecs.Map5[components.Position, components.Motion, components.Traits, components.Genes, components.Organism]
	order  []ecs.Entity
}

func newTestWorld() *testWorld {
	w := ecs.NewWorld()
	return &testWorld{
		world: w,
		mapper: ecs.NewMap5[
			components.Position,
			components.Motion,
			components.Traits,
			components.Genes,
			components.Organism,
		](w),
	}
}

func (tw *testWorld) spawn(x, y, heading float64, p genetics.Phenotype) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	mot := components.Motion{Heading: heading}
	tr := components.Traits{Phenotype: p}
	genes := components.Genes{}
	org := components.Organism{ID: uint32(len(tw.order) + 1)}
	e := tw.mapper.NewEntity(&pos, &mot, &tr, &genes, &org)
	tw.order = append(tw.order, e)
	return e
}

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Motion.JitterPi = 0
	cfg.ComputeDerived()
	return cfg
}

func TestMoveConvergesToHighBound(t *testing.T) {
	tw := newTestWorld()
	cfg := quietConfig()
	s := NewPerceptionSystem(tw.world, cfg)
	e := tw.spawn(190, 10, 0, genetics.Phenotype{})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s.Update(tw.order, rng, nil)
	}

	pos := ecs.NewMap1[components.Position](tw.world).Get(e)
	want := float64(cfg.Field.Size - 1)
	if pos.X != want {
		t.Errorf("X = %v, want %v", pos.X, want)
	}
	if pos.Y != 10 {
		t.Errorf("Y = %v, want 10", pos.Y)
	}
}

func TestMoveClampsLowBound(t *testing.T) {
	tw := newTestWorld()
	s := NewPerceptionSystem(tw.world, quietConfig())

	pos := components.Position{X: 0.2, Y: 0.1}
	s.Move(&pos, math.Pi, 0.5)
	if pos.X != 0 {
		t.Errorf("X = %v, want 0", pos.X)
	}
	s.Move(&pos, -math.Pi/2, 0.5)
	if pos.Y != 0 {
		t.Errorf("Y = %v, want 0", pos.Y)
	}
}

func TestUpdateReportsContacts(t *testing.T) {
	tw := newTestWorld()
	cfg := quietConfig()
	cfg.Motion.MaxSpeed = 0
	s := NewPerceptionSystem(tw.world, cfg)

	a := tw.spawn(50, 50, 0, genetics.Phenotype{})
	b := tw.spawn(51, 50, 0, genetics.Phenotype{})
	tw.spawn(100, 100, 0, genetics.Phenotype{})

	orgMap := ecs.NewMap1[components.Organism](tw.world)
	orgMap.Get(a).Attacked = true

	type pair struct{ main, target ecs.Entity }
	var got []pair
	s.Update(tw.order, rand.New(rand.NewSource(1)), func(main, target ecs.Entity) {
		got = append(got, pair{main, target})
	})

	want := []pair{{a, b}, {b, a}}
	if len(got) != len(want) {
		t.Fatalf("got %d contacts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("contact %d = %v, want %v", i, got[i], want[i])
		}
	}
	if orgMap.Get(a).Attacked {
		t.Error("attacked flag not cleared at tick start")
	}
}

func TestUpdateLaterOrganismsSeeMovedPositions(t *testing.T) {
	tw := newTestWorld()
	s := NewPerceptionSystem(tw.world, quietConfig())

	a := tw.spawn(50, 50, 0, genetics.Phenotype{})
	b := tw.spawn(50, 50, 0, genetics.Phenotype{})
	posMap := ecs.NewMap1[components.Position](tw.world)

	seenX := math.NaN()
	s.Update(tw.order, rand.New(rand.NewSource(1)), func(main, target ecs.Entity) {
		if main == b && target == a {
			seenX = posMap.Get(a).X
		}
	})

	if math.IsNaN(seenX) {
		t.Fatal("b never reported contact with a")
	}
	final := posMap.Get(a).X
	if final == 50 {
		t.Fatal("a did not move")
	}
	if seenX != final {
		t.Errorf("b saw a at X = %v, want a's moved X %v", seenX, final)
	}
}

func TestUpdateSteersAwayFromVisibleNeighbor(t *testing.T) {
	tw := newTestWorld()
	cfg := quietConfig()
	cfg.Motion.MaxSpeed = 0
	s := NewPerceptionSystem(tw.world, cfg)

	seeing := genetics.Phenotype{ViewAngle: math.Pi, ViewRange: 50}
	watcher := tw.spawn(50, 50, 0, seeing)
	tw.spawn(60, 52, 0, genetics.Phenotype{})

	rng := rand.New(rand.NewSource(5))
	motMap := ecs.NewMap1[components.Motion](tw.world)
	for i := 0; i < 5; i++ {
		s.Update(tw.order, rng, nil)
	}
	if h := motMap.Get(watcher).Heading; h >= 0 {
		t.Errorf("heading = %v, want negative after seeing a neighbor to the left", h)
	}
}

func TestUpdateIgnoresNeighborOutsideCone(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		trait genetics.Phenotype
	}{
		{"behind", 40, 50, genetics.Phenotype{ViewAngle: math.Pi, ViewRange: 50}},
		{"out of range", 120, 50, genetics.Phenotype{ViewAngle: math.Pi, ViewRange: 50}},
		{"blind", 60, 52, genetics.Phenotype{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld()
			cfg := quietConfig()
			cfg.Motion.MaxSpeed = 0
			s := NewPerceptionSystem(tw.world, cfg)

			watcher := tw.spawn(50, 50, 0, tt.trait)
			tw.spawn(tt.x, tt.y, 0, genetics.Phenotype{})

			s.Update(tw.order, rand.New(rand.NewSource(1)), nil)

			if h := ecs.NewMap1[components.Motion](tw.world).Get(watcher).Heading; h != 0 {
				t.Errorf("heading = %v, want 0", h)
			}
		})
	}
}

func TestUpdateKeepsStateFinite(t *testing.T) {
	tw := newTestWorld()
	cfg := config.Default()
	s := NewPerceptionSystem(tw.world, cfg)

	rng := rand.New(rand.NewSource(9))
	ribosome := genetics.NewRibosome(cfg.Derived.ViewAngleMax, cfg.Phenotype.ViewRangeMax)
	for i := 0; i < 20; i++ {
		g := genetics.RandomGenome(rng, cfg.Genome.MaxLength)
		tw.spawn(rng.Float64()*20, rng.Float64()*20, rng.Float64()*2*math.Pi-math.Pi, ribosome.Express(g))
	}

	for i := 0; i < 300; i++ {
		s.Update(tw.order, rng, nil)
	}

	posMap := ecs.NewMap1[components.Position](tw.world)
	motMap := ecs.NewMap1[components.Motion](tw.world)
	for _, e := range tw.order {
		p := posMap.Get(e)
		h := motMap.Get(e).Heading
		if p.X < 0 || p.X > cfg.Derived.FieldMax || p.Y < 0 || p.Y > cfg.Derived.FieldMax {
			t.Errorf("position (%v, %v) outside field", p.X, p.Y)
		}
		if math.IsNaN(h) || h <= -math.Pi || h > math.Pi {
			t.Errorf("heading %v outside (-pi, pi]", h)
		}
	}
}
