package genetics

import (
	"fmt"
	"math/rand"
	"strings"
)

// Genome is an ordered nucleotide sequence. Its length need not be a
// multiple of three.
type Genome []Nucleotide

// ParseGenome parses a genome string such as "augugaaaa".
// Whitespace is not accepted; any symbol outside {a, c, g, u} (either
// case) fails with ErrInvalidCodon.
func ParseGenome(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i := 0; i < len(s); i++ {
		n, ok := ParseNucleotide(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidCodon, s[i], i)
		}
		g[i] = n
	}
	return g, nil
}

// MustParseGenome is like ParseGenome but panics on error.
func MustParseGenome(s string) Genome {
	g, err := ParseGenome(s)
	if err != nil {
		panic(err)
	}
	return g
}

// RandomGenome returns a genome with length uniform in [1, maxLen] and
// uniformly drawn symbols.
func RandomGenome(rng *rand.Rand, maxLen int) Genome {
	if maxLen < 1 {
		maxLen = 1
	}
	n := 1 + rng.Intn(maxLen)
	g := make(Genome, n)
	for i := range g {
		g[i] = Nucleotide(rng.Intn(NumNucleotides))
	}
	return g
}

// CodonAt returns the codon starting at offset i.
// The caller guarantees i+3 <= len(g).
func (g Genome) CodonAt(i int) Codon {
	return MakeCodon(g[i], g[i+1], g[i+2])
}

func (g Genome) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, n := range g {
		b.WriteByte(n.Byte())
	}
	return b.String()
}

// Clone returns an independent copy of g.
func (g Genome) Clone() Genome {
	if g == nil {
		return nil
	}
	out := make(Genome, len(g))
	copy(out, g)
	return out
}
