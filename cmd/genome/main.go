// Command genome transcribes and translates a genome and prints the
// resulting reading frames, proteins and phenotype.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/genetics"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	genomeStr := flag.String("genome", "", "Genome to express, e.g. augcacuaaauggcauag")
	random := flag.Bool("random", false, "Express a random genome")
	seed := flag.Int64("seed", 0, "RNG seed for -random (0 = time-based)")
	maxLength := flag.Int("max-length", 0, "Max random genome length (0 = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var g genetics.Genome
	switch {
	case *random:
		rngSeed := *seed
		if rngSeed == 0 {
			rngSeed = time.Now().UnixNano()
		}
		n := cfg.Genome.MaxLength
		if *maxLength > 0 {
			n = *maxLength
		}
		g = genetics.RandomGenome(rand.New(rand.NewSource(rngSeed)), n)
	case *genomeStr != "":
		g, err = genetics.ParseGenome(*genomeStr)
		if err != nil {
			log.Fatalf("invalid genome: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "one of -genome or -random is required")
		flag.Usage()
		os.Exit(2)
	}

	r := genetics.NewRibosome(cfg.Derived.ViewAngleMax, cfg.Phenotype.ViewRangeMax)
	report(os.Stdout, g, r)
}

// report writes the expression of g through r.
func report(w io.Writer, g genetics.Genome, r genetics.Ribosome) {
	frames, proteins := genetics.TranscribeFrames(g)

	fmt.Fprintf(w, "genome   %s (%d symbols)\n", g, len(g))
	fmt.Fprintf(w, "frames   %d\n", len(frames))
	for i, f := range frames {
		end := "truncated"
		if f.Stopped {
			end = "stop"
		}
		fmt.Fprintf(w, "  [%d] %d..%d (%s) %s\n", i, f.Start, f.End, end, formatProtein(proteins[i]))
	}

	p := r.Translate(proteins)
	fmt.Fprintf(w, "color    %s (raw %d,%d,%d)\n", p.Color, p.RawR, p.RawG, p.RawB)
	fmt.Fprintf(w, "view_r   %+.4f\n", p.ViewRPosition)
	fmt.Fprintf(w, "view_l   %+.4f\n", p.ViewLPosition)
	fmt.Fprintf(w, "angle    %.4f\n", p.ViewAngle)
	fmt.Fprintf(w, "range    %.4f\n", p.ViewRange)
}

func formatProtein(p genetics.Protein) string {
	if len(p) == 0 {
		return "(empty)"
	}
	names := make([]string, len(p))
	for i, a := range p {
		names[i] = a.String()
	}
	return strings.Join(names, "-")
}
