package genetics

import "fmt"

// CrossoverPolicy selects how two parent genomes combine into a child.
type CrossoverPolicy uint8

const (
	// CrossoverConcat appends the second parent to the first.
	CrossoverConcat CrossoverPolicy = iota
	// CrossoverAlternate takes codon-sized blocks alternately from each
	// parent, starting with the first.
	CrossoverAlternate
)

func (p CrossoverPolicy) String() string {
	switch p {
	case CrossoverConcat:
		return "concat"
	case CrossoverAlternate:
		return "alternate"
	}
	return fmt.Sprintf("CrossoverPolicy(%d)", uint8(p))
}

// ParseCrossover maps a policy name to its CrossoverPolicy.
func ParseCrossover(name string) (CrossoverPolicy, error) {
	switch name {
	case "concat":
		return CrossoverConcat, nil
	case "alternate":
		return CrossoverAlternate, nil
	}
	return 0, fmt.Errorf("unknown crossover policy %q", name)
}

// Compatible reports whether two genomes may reproduce together.
// The gate is equal length, nothing more.
func Compatible(a, b Genome) bool {
	return len(a) == len(b)
}

// Crossover builds a child genome from two parents. Parents are not
// modified and the child shares no memory with them.
func Crossover(p CrossoverPolicy, main, target Genome) Genome {
	switch p {
	case CrossoverAlternate:
		child := make(Genome, len(main))
		for i := range child {
			block := i / 3
			if block%2 == 1 && i < len(target) {
				child[i] = target[i]
			} else {
				child[i] = main[i]
			}
		}
		return child
	default:
		child := make(Genome, 0, len(main)+len(target))
		child = append(child, main...)
		return append(child, target...)
	}
}
