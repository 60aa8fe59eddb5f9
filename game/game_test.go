package game

import (
	"testing"

	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/sim"
)

func headlessConfig(initial, maxPop int) *config.Config {
	cfg := config.Default()
	cfg.Population.Initial = initial
	cfg.Population.Max = maxPop
	cfg.ComputeDerived()
	return cfg
}

func TestNewGameSkipsInvalidGenomes(t *testing.T) {
	g, err := NewGameWithOptions(headlessConfig(0, 10), Options{
		Sim:      sim.Options{Seed: 1},
		Headless: true,
		Genomes:  []string{"augugaaaa", "augxyz", "ccc"},
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	defer g.Unload()

	orgs := g.Kernel().Organisms()
	if len(orgs) != 2 {
		t.Fatalf("population = %d, want 2", len(orgs))
	}
	if orgs[0].Genome != "augugaaaa" || orgs[1].Genome != "ccc" {
		t.Errorf("genomes = %q, %q", orgs[0].Genome, orgs[1].Genome)
	}
}

func TestAddGenomesStopsAtCapacity(t *testing.T) {
	kernel, err := sim.NewKernel(headlessConfig(0, 2), sim.Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	defer kernel.Close()

	added := addGenomes(kernel, []string{"aug", "bad!", "ccc", "ggg", "uuu"})
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if kernel.Len() != 2 {
		t.Errorf("population = %d, want 2", kernel.Len())
	}
}
