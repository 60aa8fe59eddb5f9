package game

import (
	"math"

	"github.com/pthm-cable/codonlife/sim"
)

// pickOrganism returns the organism closest to (x, y) within radius.
func pickOrganism(orgs []sim.OrganismView, x, y, radius float64) (uint32, bool) {
	var (
		best  uint32
		found bool
	)
	bestDist := radius
	for i := range orgs {
		o := &orgs[i]
		d := math.Hypot(o.X-x, o.Y-y)
		if d <= bestDist {
			bestDist = d
			best = o.ID
			found = true
		}
	}
	return best, found
}

// findByID returns the organism with the given id.
func findByID(orgs []sim.OrganismView, id uint32) (sim.OrganismView, bool) {
	for i := range orgs {
		if orgs[i].ID == id {
			return orgs[i], true
		}
	}
	return sim.OrganismView{}, false
}
