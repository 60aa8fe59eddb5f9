package genetics

import "math"

// Amino identifies one of the 20 amino definitions.
type Amino uint8

const (
	Ala Amino = iota
	Arg
	Asn
	Asp
	Cys
	Gln
	Glu
	Gly
	His
	Ile
	Leu
	Lys
	Met
	Phe
	Pro
	Ser
	Thr
	Trp
	Tyr
	Val

	NumAminos

	// AminoNone marks the absence of an amino (stop codons).
	AminoNone Amino = 0xff
)

var aminoNames = [NumAminos]string{
	"ala", "arg", "asn", "asp", "cys", "gln", "glu", "gly", "his", "ile",
	"leu", "lys", "met", "phe", "pro", "ser", "thr", "trp", "tyr", "val",
}

func (a Amino) String() string {
	if a >= NumAminos {
		return "none"
	}
	return aminoNames[a]
}

// AminoDefinition holds the trait contributions of one amino.
// Colors are integer deltas, positions and angles are radians,
// range is in field units.
type AminoDefinition struct {
	R, G, B       int
	ViewRPosition float64
	ViewLPosition float64
	ViewAngle     float64
	ViewRange     float64
}

// Definition returns the contributions of a. AminoNone contributes nothing.
func (a Amino) Definition() AminoDefinition {
	if a >= NumAminos {
		return AminoDefinition{}
	}
	return aminoTable[a]
}

// Each amino touches a single trait.
var aminoTable = [NumAminos]AminoDefinition{
	Ala: {ViewRPosition: 0.02 * math.Pi},
	Arg: {ViewLPosition: 0.02 * math.Pi},
	Asn: {ViewAngle: 0.02 * math.Pi},
	Asp: {ViewRange: 10},
	Cys: {ViewRPosition: -0.02 * math.Pi},
	Gln: {ViewLPosition: -0.02 * math.Pi},
	Glu: {ViewAngle: -0.02 * math.Pi},
	Gly: {ViewRange: -3},
	His: {R: 10},
	Ile: {G: 10},
	Leu: {B: 10},
	Lys: {R: 3},
	Met: {G: 3},
	Phe: {B: 3},
	Pro: {ViewAngle: 0.01 * math.Pi},
	Ser: {ViewRange: 5},
	Thr: {ViewRPosition: 0.01 * math.Pi},
	Trp: {ViewLPosition: 0.01 * math.Pi},
	Tyr: {ViewAngle: 0.01 * math.Pi},
	Val: {ViewRange: 1},
}

// Protein is the amino sequence of one open reading frame. May be empty.
type Protein []Amino
