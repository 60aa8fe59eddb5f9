package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewFieldLevelsInRange(t *testing.T) {
	f := NewField(50, 5, rand.New(rand.NewSource(1)))
	if f.Size() != 50 {
		t.Fatalf("Size() = %d, want 50", f.Size())
	}
	for i, l := range f.Levels() {
		if l < 0 || l >= 5 {
			t.Fatalf("level %d = %v, outside [0, 5)", i, l)
		}
	}
}

func TestHeightAt(t *testing.T) {
	f := &Field{size: 3, cells: make([]Cell, 9)}
	// Level = x + 10*y makes the bilinear surface exact
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.cells[3*y+x].Level = float64(x + 10*y)
		}
	}

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"grid point", 1, 1, 11},
		{"midpoint", 0.5, 0.5, 5.5},
		{"interior", 1.25, 0.75, 8.75},
		{"high corner", 2, 2, 22},
		{"high edge", 2, 0.5, 7},
		{"clamped low", -4, -1, 0},
		{"clamped high", 9, 9, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.HeightAt(tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUpdateSmellIsIdentity(t *testing.T) {
	f := NewField(10, 5, rand.New(rand.NewSource(2)))
	before := f.Levels()
	f.cells[7].Smell = 0.25

	f.UpdateSmell()

	after := f.Levels()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("level %d changed from %v to %v", i, before[i], after[i])
		}
	}
	if f.Smell(7, 0) != 0.25 {
		t.Errorf("Smell(7, 0) = %v, want 0.25", f.Smell(7, 0))
	}
}
