package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestCircSub(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"direct positive", 1, 0.5, 0.5},
		{"direct negative", 0.5, 1, -0.5},
		{"across pi from positive", 3, -3, 6 - 2*math.Pi},
		{"across pi from negative", -3, 3, 2*math.Pi - 6},
		{"zero first angle", 0, 3, -3},
		{"equal angles", 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircSub(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CircSub(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCircSubAntisymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	checked := 0
	for i := 0; i < 20000; i++ {
		a := (rng.Float64()*2 - 1) * math.Pi
		b := (rng.Float64()*2 - 1) * math.Pi

		// Stay away from the +-pi boundary and from a == b
		wrapped := math.Abs(WrapHeading(a - b))
		if wrapped > 0.9*math.Pi || wrapped < 1e-6 {
			continue
		}
		checked++

		ab := CircSub(a, b)
		ba := CircSub(b, a)
		if ab*ba >= 0 {
			t.Fatalf("CircSub(%v,%v)=%v and CircSub(%v,%v)=%v do not have opposite signs", a, b, ab, b, a, ba)
		}
	}
	if checked < 10000 {
		t.Fatalf("only %d samples checked", checked)
	}
}

func TestWrapHeading(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 1, 1},
		{"pi stays", math.Pi, math.Pi},
		{"minus pi maps to pi", -math.Pi, math.Pi},
		{"just above pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"several turns", 7 * math.Pi, math.Pi},
		{"negative turns", -5.5 * math.Pi, 0.5 * math.Pi},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapHeading(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WrapHeading(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("WrapHeading(%v) = %v, outside (-pi, pi]", tt.in, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 5); got != 0 {
		t.Errorf("Clamp(-1, 0, 5) = %v, want 0", got)
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7, 0, 5) = %v, want 5", got)
	}
	if got := Clamp(3, 0, 5); got != 3 {
		t.Errorf("Clamp(3, 0, 5) = %v, want 3", got)
	}
}
