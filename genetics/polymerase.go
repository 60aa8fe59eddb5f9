package genetics

// Frame describes where one reading frame sits in its genome.
type Frame struct {
	Start   int  // offset of the start codon
	End     int  // offset just past the last codon read, stop codon included
	Stopped bool // false when the genome ran out before a stop codon
}

// Transcribe scans g for open reading frames and returns one Protein per
// frame, in genome order.
func Transcribe(g Genome) []Protein {
	_, proteins := TranscribeFrames(g)
	return proteins
}

// TranscribeFrames is Transcribe that also reports frame boundaries;
// frames[k] produced proteins[k].
//
// The scan looks for a start codon one symbol at a time. When one is
// found at i, the frame reads codons from i+3 in steps of three until a
// stop codon (which contributes nothing) or until fewer than three
// symbols remain, in which case the truncated protein is still emitted.
// Scanning then resumes at the last symbol of the closing codon, so a
// start codon overlapping it is still found. Genomes shorter than three
// symbols, or with no start codon, yield no proteins.
func TranscribeFrames(g Genome) ([]Frame, []Protein) {
	var (
		frames   []Frame
		proteins []Protein
	)
	last := len(g) - 2 // codons may start at offsets < last

	s := 0
	for s < last {
		i := s
		found := false
		for ; i < last; i++ {
			if g.CodonAt(i).Info().Start {
				found = true
				break
			}
		}
		s = i + 2
		if !found {
			continue
		}

		frame := Frame{Start: i}
		protein := Protein{}
		n := i + 3
		for ; n < last; n += 3 {
			info := g.CodonAt(n).Info()
			if info.Stop {
				frame.Stopped = true
				break
			}
			protein = append(protein, info.Amino)
		}
		frame.End = n
		if frame.Stopped {
			frame.End = n + 3
		}

		frames = append(frames, frame)
		proteins = append(proteins, protein)
		s = n + 2
	}
	return frames, proteins
}
