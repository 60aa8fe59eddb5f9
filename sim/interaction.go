package sim

import (
	"errors"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codonlife/components"
	"github.com/pthm-cable/codonlife/genetics"
	"github.com/pthm-cable/codonlife/systems"
)

// Outcome is the result of one contact between two organisms.
type Outcome uint8

const (
	OutcomeContact      Outcome = iota // reproduction disabled
	OutcomeIncompatible                // genome lengths differ
	OutcomeCooldown                    // a parent is still cooling down
	OutcomeFull                        // population at capacity
	OutcomeBirth                       // offspring queued
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContact:
		return "contact"
	case OutcomeIncompatible:
		return "incompatible"
	case OutcomeCooldown:
		return "cooldown"
	case OutcomeFull:
		return "full"
	case OutcomeBirth:
		return "birth"
	}
	return "unknown"
}

// interact is the contact callback of the motion pass.
func (s *Simulation) interact(main, target ecs.Entity) {
	s.resolve(main, target)
}

// resolve marks both organisms as attacked and, when their genomes are
// compatible, queues an offspring. The offspring is inserted after the
// motion pass.
func (s *Simulation) resolve(main, target ecs.Entity) Outcome {
	mainOrg := s.store.orgMap.Get(main)
	targetOrg := s.store.orgMap.Get(target)
	mainOrg.Attacked = true
	targetOrg.Attacked = true
	s.collector.RecordContact()
	s.lifetimes.RecordContact(mainOrg.ID)

	if !s.cfg.Reproduction.Enabled {
		return OutcomeContact
	}

	mainGenes := s.store.genesMap.Get(main)
	targetGenes := s.store.genesMap.Get(target)
	if !genetics.Compatible(mainGenes.Genome, targetGenes.Genome) {
		s.collector.RecordIncompatible()
		return OutcomeIncompatible
	}
	if mainOrg.ReproCooldown > 0 || targetOrg.ReproCooldown > 0 {
		s.collector.RecordCooldown()
		return OutcomeCooldown
	}
	if s.store.Len()+len(s.pending) >= s.store.Cap() {
		s.collector.RecordCapacityRejected()
		return OutcomeFull
	}

	child := genetics.Crossover(s.crossover, mainGenes.Genome, targetGenes.Genome)

	mainPos := s.store.posMap.Get(main)
	targetPos := s.store.posMap.Get(target)
	angle := s.rng.Float64() * 2 * math.Pi
	offset := s.cfg.Reproduction.SpawnOffset
	fieldMax := s.cfg.Derived.FieldMax

	s.pending = append(s.pending, Spawn{
		Pos: components.Position{
			X: systems.Clamp((mainPos.X+targetPos.X)/2+offset*math.Cos(angle), 0, fieldMax),
			Y: systems.Clamp((mainPos.Y+targetPos.Y)/2+offset*math.Sin(angle), 0, fieldMax),
		},
		Heading:    s.randomHeading(),
		Genome:     child,
		Phenotype:  s.ribosome.Express(child),
		Generation: max(mainOrg.Generation, targetOrg.Generation) + 1,
		Parents:    [2]uint32{mainOrg.ID, targetOrg.ID},
	})

	cooldown := int32(s.cfg.Reproduction.CooldownTicks)
	mainOrg.ReproCooldown = cooldown
	targetOrg.ReproCooldown = cooldown
	return OutcomeBirth
}

// insertPending inserts queued offspring in queue order.
func (s *Simulation) insertPending() {
	for _, sp := range s.pending {
		if _, err := s.insert(sp); err != nil {
			if errors.Is(err, ErrCapacityExceeded) {
				s.collector.RecordCapacityRejected()
			}
			slog.Debug("birth dropped", "error", err, "tick", s.tick)
			continue
		}
		s.collector.RecordBirth()
		s.lifetimes.RecordChild(sp.Parents[0])
		s.lifetimes.RecordChild(sp.Parents[1])
	}
	s.pending = s.pending[:0]
}
