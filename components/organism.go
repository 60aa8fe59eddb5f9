// Package components defines ECS components for the simulation.
package components

import "github.com/pthm-cable/codonlife/genetics"

// Organism bundles identity and per-tick interaction state.
type Organism struct {
	ID            uint32
	Generation    int
	BornTick      int64
	Attacked      bool  // Set by a proximity contact this tick, cleared at tick start
	ReproCooldown int32 // Ticks until this organism may reproduce again
}

// Genes holds the immutable genome an organism was synthesized from.
type Genes struct {
	Genome genetics.Genome
}

// Traits holds the phenotype expressed from Genes. Immutable after creation.
type Traits struct {
	genetics.Phenotype
}
