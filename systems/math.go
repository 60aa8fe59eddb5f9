package systems

import "math"

const twoPi = 2 * math.Pi

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapHeading wraps an angle into (-Pi, Pi]. Non-finite input maps to 0.
func WrapHeading(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	for a > math.Pi {
		a -= twoPi
	}
	for a <= -math.Pi {
		a += twoPi
	}
	return a
}

// CircSub returns the signed difference a-b, choosing between the direct
// difference and the difference against b shifted one full turn in the
// direction of a's sign, whichever is smaller in magnitude. Ties go to
// the shifted candidate. For a == 0 both candidates are equal.
func CircSub(a, b float64) float64 {
	d := a - b
	dAlt := a - (b + sign(a)*twoPi)
	if math.Abs(d) < math.Abs(dAlt) {
		return d
	}
	return dAlt
}

// sign returns -1, 0 or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
