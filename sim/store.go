package sim

import (
	"errors"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codonlife/components"
	"github.com/pthm-cable/codonlife/genetics"
)

// ErrCapacityExceeded is returned when the population would grow past its
// configured maximum.
var ErrCapacityExceeded = errors.New("population capacity exceeded")

// Spawn describes an organism about to be inserted.
type Spawn struct {
	Pos        components.Position
	Heading    float64
	Genome     genetics.Genome
	Phenotype  genetics.Phenotype
	Generation int
	Parents    [2]uint32 // zero for organisms created directly
}

// Store holds live organisms as ark entities and remembers their
// creation order. Organisms are never removed.
type Store struct {
	world *ecs.World

	mapper *ecs.Map5[
		components.Position,
		components.Motion,
		components.Traits,
		components.Genes,
		components.Organism,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Motion,
		components.Traits,
		components.Genes,
		components.Organism,
	]
	posMap    *ecs.Map1[components.Position]
	motionMap *ecs.Map1[components.Motion]
	traitsMap *ecs.Map1[components.Traits]
	genesMap  *ecs.Map1[components.Genes]
	orgMap    *ecs.Map1[components.Organism]

	order    []ecs.Entity
	capacity int
	nextID   uint32
}

// NewStore creates an empty store holding at most capacity organisms.
func NewStore(capacity int) *Store {
	world := ecs.NewWorld()
	return &Store{
		world: world,
		mapper: ecs.NewMap5[
			components.Position,
			components.Motion,
			components.Traits,
			components.Genes,
			components.Organism,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Motion,
			components.Traits,
			components.Genes,
			components.Organism,
		](world),
		posMap:    ecs.NewMap1[components.Position](world),
		motionMap: ecs.NewMap1[components.Motion](world),
		traitsMap: ecs.NewMap1[components.Traits](world),
		genesMap:  ecs.NewMap1[components.Genes](world),
		orgMap:    ecs.NewMap1[components.Organism](world),
		order:     make([]ecs.Entity, 0, capacity),
		capacity:  capacity,
	}
}

// World returns the underlying ECS world.
func (s *Store) World() *ecs.World {
	return s.world
}

// Insert adds an organism born at tick. It fails with ErrCapacityExceeded
// when the store is full and then adds nothing.
func (s *Store) Insert(sp Spawn, tick int64) (ecs.Entity, error) {
	if s.Full() {
		return ecs.Entity{}, ErrCapacityExceeded
	}

	s.nextID++
	pos := sp.Pos
	mot := components.Motion{Heading: sp.Heading}
	tr := components.Traits{Phenotype: sp.Phenotype}
	genes := components.Genes{Genome: sp.Genome}
	org := components.Organism{
		ID:         s.nextID,
		Generation: sp.Generation,
		BornTick:   tick,
	}

	e := s.mapper.NewEntity(&pos, &mot, &tr, &genes, &org)
	s.order = append(s.order, e)
	return e, nil
}

// Len returns the number of live organisms.
func (s *Store) Len() int {
	return len(s.order)
}

// Cap returns the population maximum.
func (s *Store) Cap() int {
	return s.capacity
}

// Full reports whether no more organisms fit.
func (s *Store) Full() bool {
	return len(s.order) >= s.capacity
}

// Order returns entities in creation order. The slice is owned by the
// store and must not be modified.
func (s *Store) Order() []ecs.Entity {
	return s.order
}

// View returns a read-only copy of one organism.
func (s *Store) View(e ecs.Entity) OrganismView {
	pos := s.posMap.Get(e)
	tr := s.traitsMap.Get(e)
	genes := s.genesMap.Get(e)
	org := s.orgMap.Get(e)
	return OrganismView{
		ID:            org.ID,
		X:             pos.X,
		Y:             pos.Y,
		Heading:       s.motionMap.Get(e).Heading,
		Color:         tr.Color,
		ViewRPosition: tr.ViewRPosition,
		ViewLPosition: tr.ViewLPosition,
		ViewAngle:     tr.ViewAngle,
		ViewRange:     tr.ViewRange,
		Attacked:      org.Attacked,
		Generation:    org.Generation,
		Genome:        genes.Genome.String(),
	}
}

// Views returns copies of every organism in creation order.
func (s *Store) Views() []OrganismView {
	out := make([]OrganismView, len(s.order))
	for i, e := range s.order {
		out[i] = s.View(e)
	}
	return out
}
