package systems

import (
	"math"
	"math/rand"
)

// Cell is one grid point of the field.
type Cell struct {
	Level float64 // Terrain height, fixed after creation
	Smell float64 // Reserved for a diffusion process; currently inert
}

// Field is a square terrain grid, indexed row-major as size*y + x.
type Field struct {
	size  int
	cells []Cell
}

// NewField creates a size x size field with levels uniform in [0, maxLevel).
func NewField(size int, maxLevel float64, rng *rand.Rand) *Field {
	f := &Field{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for i := range f.cells {
		f.cells[i].Level = rng.Float64() * maxLevel
	}
	return f
}

// Size returns the number of cells per side.
func (f *Field) Size() int {
	return f.size
}

// Level returns the terrain level of cell (x, y).
func (f *Field) Level(x, y int) float64 {
	return f.cells[f.size*y+x].Level
}

// Smell returns the smell value of cell (x, y).
func (f *Field) Smell(x, y int) float64 {
	return f.cells[f.size*y+x].Smell
}

// Levels returns a copy of all levels in row-major order.
func (f *Field) Levels() []float64 {
	out := make([]float64, len(f.cells))
	for i, c := range f.cells {
		out[i] = c.Level
	}
	return out
}

// HeightAt samples the terrain at a continuous position by bilinear
// interpolation. Coordinates outside [0, size-1] are clamped, so the
// result is defined everywhere.
func (f *Field) HeightAt(x, y float64) float64 {
	hi := float64(f.size - 1)
	x = Clamp(x, 0, hi)
	y = Clamp(y, 0, hi)

	xf := int(math.Floor(x))
	yf := int(math.Floor(y))
	if xf >= f.size-1 {
		xf = f.size - 2
	}
	if yf >= f.size-1 {
		yf = f.size - 2
	}

	f0 := f.Level(xf, yf)
	f1 := f.Level(xf+1, yf)
	f2 := f.Level(xf, yf+1)
	f3 := f.Level(xf+1, yf+1)

	tx := x - float64(xf)
	ty := y - float64(yf)
	return (f0+(f1-f0)*tx)*(1-ty) + (f2+(f3-f2)*tx)*ty
}

// UpdateSmell is the per-tick field upkeep step. Smell has no dynamics
// yet, so every cell is left as it is.
func (f *Field) UpdateSmell() {}
