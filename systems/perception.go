package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codonlife/components"
	"github.com/pthm-cable/codonlife/config"
)

// ContactFunc is called when main comes within contact distance of target
// during main's neighbor scan. A pair in mutual contact is reported once
// from each side.
type ContactFunc func(main, target ecs.Entity)

// PerceptionSystem moves organisms and steers them by what they see.
type PerceptionSystem struct {
	posMap    *ecs.Map1[components.Position]
	motionMap *ecs.Map1[components.Motion]
	traitsMap *ecs.Map1[components.Traits]
	orgMap    *ecs.Map1[components.Organism]

	maxSpeed    float64
	jitter      float64
	steerGain   float64
	contactDist float64
	fieldMax    float64
}

// NewPerceptionSystem creates a perception system over the world.
func NewPerceptionSystem(w *ecs.World, cfg *config.Config) *PerceptionSystem {
	return &PerceptionSystem{
		posMap:      ecs.NewMap1[components.Position](w),
		motionMap:   ecs.NewMap1[components.Motion](w),
		traitsMap:   ecs.NewMap1[components.Traits](w),
		orgMap:      ecs.NewMap1[components.Organism](w),
		maxSpeed:    cfg.Motion.MaxSpeed,
		jitter:      cfg.Derived.Jitter,
		steerGain:   cfg.Motion.SteerGain,
		contactDist: 2 * cfg.Motion.BodySize,
		fieldMax:    cfg.Derived.FieldMax,
	}
}

// Update advances every organism in order by one tick.
//
// All attacked flags are cleared first. Then each organism in turn moves
// along its heading, scans every other organism, and turns. Positions are
// updated in place, so later organisms see the already-moved positions of
// earlier ones. onContact may be nil.
func (s *PerceptionSystem) Update(order []ecs.Entity, rng *rand.Rand, onContact ContactFunc) {
	for _, e := range order {
		s.orgMap.Get(e).Attacked = false
	}

	for _, e := range order {
		pos := s.posMap.Get(e)
		mot := s.motionMap.Get(e)
		tr := s.traitsMap.Get(e)

		dir := mot.Heading
		s.Move(pos, dir, rng.Float64()*s.maxSpeed)

		turn := 0.0
		for _, k := range order {
			if k == e {
				continue
			}
			other := s.posMap.Get(k)
			dx := other.X - pos.X
			dy := other.Y - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			bearing := math.Atan2(dy, dx)

			if dist < s.contactDist && onContact != nil {
				onContact(e, k)
			}
			if dist < tr.ViewRange && math.Abs(CircSub(bearing, dir)) < tr.ViewAngle*0.5 {
				turn += sign(CircSub(dir, bearing)) * rng.Float64() * s.steerGain
			}
		}

		mot.Heading = WrapHeading(dir + turn + (rng.Float64()*2-1)*s.jitter)
	}
}

// Move advances pos by speed along heading and clamps it to the field.
func (s *PerceptionSystem) Move(pos *components.Position, heading, speed float64) {
	pos.X = Clamp(pos.X+speed*math.Cos(heading), 0, s.fieldMax)
	pos.Y = Clamp(pos.Y+speed*math.Sin(heading), 0, s.fieldMax)
}
