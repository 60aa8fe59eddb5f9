// Package genetics turns nucleotide genomes into organism phenotypes.
//
// A Genome is scanned by Transcribe for open reading frames, each frame
// yielding a Protein (a list of Aminos). A Ribosome then folds all
// proteins into a single Phenotype.
package genetics

import (
	"errors"
	"fmt"
)

// ErrInvalidCodon is returned for a codon or genome containing a symbol
// outside {a, c, g, u} or a codon that is not exactly three symbols long.
var ErrInvalidCodon = errors.New("invalid codon")

// Nucleotide is one symbol of the genome alphabet.
type Nucleotide uint8

const (
	A Nucleotide = iota
	C
	G
	U

	NumNucleotides = 4
)

var nucleotideSymbols = [NumNucleotides]byte{'a', 'c', 'g', 'u'}

// Byte returns the lowercase symbol for n.
func (n Nucleotide) Byte() byte {
	return nucleotideSymbols[n&3]
}

// ParseNucleotide maps a symbol to its Nucleotide. Upper case is accepted.
func ParseNucleotide(b byte) (Nucleotide, bool) {
	switch b {
	case 'a', 'A':
		return A, true
	case 'c', 'C':
		return C, true
	case 'g', 'G':
		return G, true
	case 'u', 'U':
		return U, true
	}
	return 0, false
}

// Codon is a nucleotide triple packed as first*16 + second*4 + third.
// Every value in [0, NumCodons) is a valid codon.
type Codon uint8

// NumCodons is the size of the codon table.
const NumCodons = 64

// MakeCodon packs three nucleotides into a Codon.
func MakeCodon(n1, n2, n3 Nucleotide) Codon {
	return Codon(n1&3)<<4 | Codon(n2&3)<<2 | Codon(n3&3)
}

// ParseCodon parses a three-symbol codon string such as "aug".
func ParseCodon(s string) (Codon, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("%w: %q has length %d", ErrInvalidCodon, s, len(s))
	}
	var ns [3]Nucleotide
	for i := 0; i < 3; i++ {
		n, ok := ParseNucleotide(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q has symbol %q", ErrInvalidCodon, s, s[i])
		}
		ns[i] = n
	}
	return MakeCodon(ns[0], ns[1], ns[2]), nil
}

// String returns the codon as three lowercase symbols.
func (c Codon) String() string {
	return string([]byte{
		Nucleotide(c >> 4).Byte(),
		Nucleotide(c >> 2).Byte(),
		Nucleotide(c).Byte(),
	})
}

// CodonInfo is the codon table entry for one codon.
// Stop codons carry no amino; every other codon carries exactly one.
type CodonInfo struct {
	Start bool
	Stop  bool
	Amino Amino // AminoNone for stop codons
}

// HasAmino reports whether the codon codes for an amino.
func (ci CodonInfo) HasAmino() bool {
	return ci.Amino != AminoNone
}

// Info returns the table entry for c. Total over all Codon values.
func (c Codon) Info() CodonInfo {
	return codonTable[c&(NumCodons-1)]
}

// Lookup parses a codon string and returns its table entry.
func Lookup(s string) (CodonInfo, error) {
	c, err := ParseCodon(s)
	if err != nil {
		return CodonInfo{}, err
	}
	return c.Info(), nil
}

// codonTable is indexed by Codon. Built once from codonAssignments.
var codonTable = buildCodonTable()

type codonAssignment struct {
	codon string
	amino Amino
	start bool
}

// codonAssignments lists every coding codon. The three codons missing
// from this list (uaa, uag, uga) are stop codons.
var codonAssignments = []codonAssignment{
	{"gca", Ala, false}, {"gcc", Ala, false}, {"gcg", Ala, false}, {"gcu", Ala, false},
	{"aga", Arg, false}, {"agg", Arg, false}, {"cga", Arg, false}, {"cgc", Arg, false},
	{"cgg", Arg, false}, {"cgu", Arg, false},
	{"aac", Asn, false}, {"aau", Asn, false},
	{"gac", Asp, false}, {"gau", Asp, false},
	{"ugc", Cys, false}, {"ugu", Cys, false},
	{"caa", Gln, false}, {"cag", Gln, false},
	{"gaa", Glu, false}, {"gag", Glu, false},
	{"gga", Gly, false}, {"ggc", Gly, false}, {"ggg", Gly, false}, {"ggu", Gly, false},
	{"cac", His, false}, {"cau", His, false},
	{"aua", Ile, true}, {"auc", Ile, false}, {"auu", Ile, false},
	{"cua", Leu, false}, {"cuc", Leu, false}, {"cug", Leu, false}, {"cuu", Leu, false},
	{"uua", Leu, false}, {"uug", Leu, false},
	{"aaa", Lys, false}, {"aag", Lys, false},
	{"aug", Met, true},
	{"uuc", Phe, false}, {"uuu", Phe, false},
	{"cca", Pro, false}, {"ccc", Pro, false}, {"ccg", Pro, false}, {"ccu", Pro, false},
	{"agc", Ser, false}, {"agu", Ser, false}, {"uca", Ser, false}, {"ucc", Ser, false},
	{"ucg", Ser, false}, {"ucu", Ser, false},
	{"aca", Thr, false}, {"acc", Thr, false}, {"acg", Thr, false}, {"acu", Thr, false},
	{"ugg", Trp, false},
	{"uac", Tyr, false}, {"uau", Tyr, false},
	{"gua", Val, false}, {"guc", Val, false}, {"gug", Val, true}, {"guu", Val, false},
}

func buildCodonTable() [NumCodons]CodonInfo {
	var table [NumCodons]CodonInfo
	for i := range table {
		table[i] = CodonInfo{Stop: true, Amino: AminoNone}
	}
	for _, a := range codonAssignments {
		c, err := ParseCodon(a.codon)
		if err != nil {
			panic(err)
		}
		table[c] = CodonInfo{Start: a.start, Amino: a.amino}
	}
	return table
}
