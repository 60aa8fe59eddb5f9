package sim

import (
	"fmt"
	"log/slog"
)

// SetPopulationTarget grows the population with random organisms until it
// holds n. A target above the configured maximum fails with
// ErrCapacityExceeded and creates nothing. A target at or below the
// current size is recorded but removes nothing.
func (s *Simulation) SetPopulationTarget(n int) error {
	if n > s.store.Cap() {
		return fmt.Errorf("%w: target %d, maximum %d", ErrCapacityExceeded, n, s.store.Cap())
	}
	s.target = n

	created := 0
	for s.store.Len() < n {
		if _, err := s.CreateRandom(); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		slog.Info("population grown", "target", n, "created", created, "tick", s.tick)
	}
	return nil
}

// PopulationTarget returns the last requested population target.
func (s *Simulation) PopulationTarget() int {
	return s.target
}
