package sim

import "github.com/pthm-cable/codonlife/genetics"

// OrganismView is a read-only copy of one organism for the renderer.
type OrganismView struct {
	ID      uint32
	X, Y    float64
	Heading float64
	Color   genetics.RGB

	ViewRPosition float64
	ViewLPosition float64
	ViewAngle     float64
	ViewRange     float64

	Attacked   bool
	Generation int
	Genome     string

	Contacts int // contacts this organism initiated
	Children int
}

// FieldView is a read-only copy of the terrain grid.
type FieldView struct {
	Size   int
	Levels []float64 // row-major, Size*y + x
}

// Level returns the terrain level of cell (x, y).
func (f FieldView) Level(x, y int) float64 {
	return f.Levels[f.Size*y+x]
}
