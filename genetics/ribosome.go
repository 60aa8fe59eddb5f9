package genetics

import (
	"fmt"
	"math"
)

// RGB is a display color with channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Phenotype is the trait set folded from all of an organism's proteins.
//
// RawR/RawG/RawB are the unclamped color accumulators; Color is their
// clamped display value. The view fields are clamped after every protein.
type Phenotype struct {
	RawR, RawG, RawB int
	Color            RGB

	ViewRPosition float64 // [-pi, pi]
	ViewLPosition float64 // [-pi, pi]
	ViewAngle     float64 // [0, ViewAngleMax]
	ViewRange     float64 // [0, ViewRangeMax]

	Proteins int // number of proteins folded in
	Aminos   int // total aminos across those proteins
}

// Ribosome folds proteins into a Phenotype using fixed clamp limits.
type Ribosome struct {
	ViewAngleMax float64
	ViewRangeMax float64
}

// NewRibosome creates a ribosome with the given clamp limits.
func NewRibosome(viewAngleMax, viewRangeMax float64) Ribosome {
	return Ribosome{ViewAngleMax: viewAngleMax, ViewRangeMax: viewRangeMax}
}

// Translate folds proteins in order. After each protein the view traits
// are clamped and the display color is refreshed from the raw sums, so
// a partial sum that overflowed is cut before later proteins pull it
// back. With no proteins the result is the zero Phenotype.
func (r Ribosome) Translate(proteins []Protein) Phenotype {
	var p Phenotype
	for _, protein := range proteins {
		for _, a := range protein {
			def := a.Definition()
			p.RawR += def.R
			p.RawG += def.G
			p.RawB += def.B
			p.ViewRPosition += def.ViewRPosition
			p.ViewLPosition += def.ViewLPosition
			p.ViewAngle += def.ViewAngle
			p.ViewRange += def.ViewRange
		}
		p.Aminos += len(protein)
		p.Proteins++

		p.Color = RGB{R: clampChannel(p.RawR), G: clampChannel(p.RawG), B: clampChannel(p.RawB)}
		p.ViewRPosition = clamp(p.ViewRPosition, -math.Pi, math.Pi)
		p.ViewLPosition = clamp(p.ViewLPosition, -math.Pi, math.Pi)
		p.ViewAngle = clamp(p.ViewAngle, 0, r.ViewAngleMax)
		p.ViewRange = clamp(p.ViewRange, 0, r.ViewRangeMax)
	}
	return p
}

// Express runs Transcribe then Translate.
func (r Ribosome) Express(g Genome) Phenotype {
	return r.Translate(Transcribe(g))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
