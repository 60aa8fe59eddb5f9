package components

// Position represents an organism's location in field units.
type Position struct {
	X, Y float64
}

// Motion holds the organism's heading in radians, kept in (-pi, pi].
type Motion struct {
	Heading float64
}
