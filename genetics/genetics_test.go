package genetics

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

var testRibosome = NewRibosome(math.Pi, 50)

func TestCodonTableShape(t *testing.T) {
	var starts, stops, coding int
	for c := Codon(0); c < NumCodons; c++ {
		info := c.Info()
		if info.Start && info.Stop {
			t.Errorf("codon %s is both start and stop", c)
		}

		switch {
		case info.Stop:
			stops++
			if info.HasAmino() {
				t.Errorf("stop codon %s carries an amino", c)
			}
		case info.Start:
			starts++
			if !info.HasAmino() {
				t.Errorf("start codon %s has no amino", c)
			}
		default:
			coding++
			if !info.HasAmino() {
				t.Errorf("codon %s has no amino", c)
			}
		}
	}
	if starts != 3 || stops != 3 || coding != 58 {
		t.Errorf("starts/stops/coding = %d/%d/%d, want 3/3/58", starts, stops, coding)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		codon string
		want  CodonInfo
	}{
		{"aug", CodonInfo{Start: true, Amino: Met}},
		{"aua", CodonInfo{Start: true, Amino: Ile}},
		{"gug", CodonInfo{Start: true, Amino: Val}},
		{"uaa", CodonInfo{Stop: true, Amino: AminoNone}},
		{"uag", CodonInfo{Stop: true, Amino: AminoNone}},
		{"uga", CodonInfo{Stop: true, Amino: AminoNone}},
		{"gca", CodonInfo{Amino: Ala}},
		{"UGG", CodonInfo{Amino: Trp}},
	}
	for _, tt := range tests {
		t.Run(tt.codon, func(t *testing.T) {
			got, err := Lookup(tt.codon)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.codon, got, tt.want)
			}
		})
	}
}

func TestLookupInvalid(t *testing.T) {
	for _, s := range []string{"", "au", "augg", "atg", "a g", "xyz"} {
		if _, err := Lookup(s); !errors.Is(err, ErrInvalidCodon) {
			t.Errorf("Lookup(%q) error = %v, want ErrInvalidCodon", s, err)
		}
	}
}

func TestCodonStringRoundTrip(t *testing.T) {
	for c := Codon(0); c < NumCodons; c++ {
		parsed, err := ParseCodon(c.String())
		if err != nil {
			t.Fatalf("ParseCodon(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseCodon(%q) = %v, want %v", c.String(), parsed, c)
		}
	}
}

func TestParseGenome(t *testing.T) {
	g, err := ParseGenome("AugC")
	if err != nil {
		t.Fatalf("ParseGenome: %v", err)
	}
	if !reflect.DeepEqual(g, Genome{A, U, G, C}) {
		t.Errorf("ParseGenome = %v", g)
	}
	if g.String() != "augc" {
		t.Errorf("String() = %q, want augc", g.String())
	}

	if _, err := ParseGenome("augt"); !errors.Is(err, ErrInvalidCodon) {
		t.Errorf("error = %v, want ErrInvalidCodon", err)
	}
}

func TestTranscribeStartThenStop(t *testing.T) {
	proteins := Transcribe(MustParseGenome("augugaaaa"))
	if len(proteins) != 1 || len(proteins[0]) != 0 {
		t.Errorf("Transcribe = %v, want one empty protein", proteins)
	}
}

func TestTranscribeShortGenomes(t *testing.T) {
	for _, s := range []string{"", "a", "au", "ug"} {
		if got := Transcribe(MustParseGenome(s)); len(got) != 0 {
			t.Errorf("Transcribe(%q) = %v, want none", s, got)
		}
	}
}

func TestTranscribeTruncatedFrame(t *testing.T) {
	proteins := Transcribe(MustParseGenome("auggcacac"))
	if len(proteins) != 1 {
		t.Fatalf("got %d proteins, want 1", len(proteins))
	}
	if !reflect.DeepEqual(proteins[0], Protein{Ala, His}) {
		t.Errorf("protein = %v, want [ala his]", proteins[0])
	}
}

func TestTranscribeMultipleFrames(t *testing.T) {
	frames, proteins := TranscribeFrames(MustParseGenome("augcacuaaauggcauag"))
	wantProteins := []Protein{{His}, {Ala}}
	if !reflect.DeepEqual(proteins, wantProteins) {
		t.Errorf("proteins = %v, want %v", proteins, wantProteins)
	}
	wantFrames := []Frame{
		{Start: 0, End: 9, Stopped: true},
		{Start: 9, End: 18, Stopped: true},
	}
	if !reflect.DeepEqual(frames, wantFrames) {
		t.Errorf("frames = %+v, want %+v", frames, wantFrames)
	}
}

func TestTranscribeStartOverlappingStop(t *testing.T) {
	// The stop codon "uga" at 3 shares its last symbol with "aug" at 5.
	// The "gug" at 2 sits inside the first frame and is never a start.
	proteins := Transcribe(MustParseGenome("augugaugcacuaa"))
	if len(proteins) != 2 {
		t.Fatalf("got %d proteins, want 2", len(proteins))
	}
	if len(proteins[0]) != 0 {
		t.Errorf("first protein = %v, want empty", proteins[0])
	}
	if !reflect.DeepEqual(proteins[1], Protein{His}) {
		t.Errorf("second protein = %v, want [his]", proteins[1])
	}
}

func TestTranscribeNoStartCodon(t *testing.T) {
	for _, g := range []Genome{
		MustParseGenome(strings.Repeat("c", 100)),
		MustParseGenome(strings.Repeat("u", 31)),
	} {
		if got := Transcribe(g); len(got) != 0 {
			t.Errorf("Transcribe(%s) = %v, want none", g, got)
		}
	}

	rng := rand.New(rand.NewSource(7))
	checked := 0
	for trial := 0; trial < 2000; trial++ {
		g := RandomGenome(rng, 12)
		if hasStartCodon(g) {
			continue
		}
		checked++
		if got := Transcribe(g); len(got) != 0 {
			t.Errorf("Transcribe(%s) = %v, want none", g, got)
		}
	}
	if checked <= 100 {
		t.Errorf("only %d start-free genomes checked", checked)
	}
}

func hasStartCodon(g Genome) bool {
	for i := 0; i+3 <= len(g); i++ {
		if g.CodonAt(i).Info().Start {
			return true
		}
	}
	return false
}

func TestTranslateEmpty(t *testing.T) {
	p := testRibosome.Translate(nil)
	if p != (Phenotype{}) {
		t.Errorf("Translate(nil) = %+v, want zero", p)
	}
	if got := p.Color.String(); got != "rgb(0,0,0)" {
		t.Errorf("color = %s", got)
	}
}

func TestTranslateClampsAfterEachProtein(t *testing.T) {
	tests := []struct {
		name      string
		proteins  []Protein
		wantRange float64
	}{
		{
			name:      "underflow then recover",
			proteins:  []Protein{repeat(Gly, 10), {Asp}},
			wantRange: 10, // -30 clamps to 0, then +10
		},
		{
			name:      "overflow then pull back",
			proteins:  []Protein{repeat(Asp, 6), repeat(Gly, 5)},
			wantRange: 35, // 60 clamps to 50, then -15
		},
		{
			name:      "within one protein",
			proteins:  []Protein{append(repeat(Asp, 6), repeat(Gly, 5)...)},
			wantRange: 45, // clamped only after the whole protein
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testRibosome.Translate(tt.proteins)
			if math.Abs(p.ViewRange-tt.wantRange) > 1e-9 {
				t.Errorf("ViewRange = %v, want %v", p.ViewRange, tt.wantRange)
			}
		})
	}
}

func TestTranslateColorStaysRaw(t *testing.T) {
	p := testRibosome.Translate([]Protein{repeat(His, 30), repeat(Lys, 2)})
	if p.RawR != 306 {
		t.Errorf("RawR = %d, want 306", p.RawR)
	}
	if p.Color.R != 255 || p.Color.G != 0 {
		t.Errorf("Color = %s, want R 255 G 0", p.Color)
	}
	if p.Proteins != 2 || p.Aminos != 32 {
		t.Errorf("Proteins/Aminos = %d/%d, want 2/32", p.Proteins, p.Aminos)
	}
}

func TestTranslateViewAngleLimit(t *testing.T) {
	r := NewRibosome(0.5*math.Pi, 50)
	p := r.Translate([]Protein{repeat(Asn, 40)}) // 0.8 pi before clamping
	if math.Abs(p.ViewAngle-0.5*math.Pi) > 1e-12 {
		t.Errorf("ViewAngle = %v, want 0.5 pi", p.ViewAngle)
	}

	p = r.Translate([]Protein{repeat(Glu, 3)})
	if p.ViewAngle != 0 {
		t.Errorf("ViewAngle = %v, want 0", p.ViewAngle)
	}
}

func TestPhenotypeClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		g := RandomGenome(rng, 2000)
		p := testRibosome.Express(g)

		if p.ViewRPosition < -math.Pi || p.ViewRPosition > math.Pi {
			t.Fatalf("ViewRPosition %v out of range", p.ViewRPosition)
		}
		if p.ViewLPosition < -math.Pi || p.ViewLPosition > math.Pi {
			t.Fatalf("ViewLPosition %v out of range", p.ViewLPosition)
		}
		if p.ViewAngle < 0 || p.ViewAngle > math.Pi {
			t.Fatalf("ViewAngle %v out of range", p.ViewAngle)
		}
		if p.ViewRange < 0 || p.ViewRange > 50 {
			t.Fatalf("ViewRange %v out of range", p.ViewRange)
		}
		want := RGB{R: clampChannel(p.RawR), G: clampChannel(p.RawG), B: clampChannel(p.RawB)}
		if p.Color != want {
			t.Fatalf("Color = %s, want %s", p.Color, want)
		}
	}
}

func TestCrossover(t *testing.T) {
	main := MustParseGenome("aaaaaaaaa")
	target := MustParseGenome("ccccccccc")

	tests := []struct {
		policy CrossoverPolicy
		want   string
	}{
		{CrossoverConcat, "aaaaaaaaaccccccccc"},
		{CrossoverAlternate, "aaacccaaa"},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			if got := Crossover(tt.policy, main, target).String(); got != tt.want {
				t.Errorf("Crossover = %q, want %q", got, tt.want)
			}
		})
	}

	// Parents untouched
	if main.String() != "aaaaaaaaa" || target.String() != "ccccccccc" {
		t.Errorf("parents modified: %s, %s", main, target)
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b Genome
		want bool
	}{
		{MustParseGenome("aug"), MustParseGenome("ccc"), true},
		{MustParseGenome("aug"), MustParseGenome("cccc"), false},
		{nil, Genome{}, true},
	}
	for _, tt := range tests {
		if got := Compatible(tt.a, tt.b); got != tt.want {
			t.Errorf("Compatible(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseCrossover(t *testing.T) {
	p, err := ParseCrossover("alternate")
	if err != nil {
		t.Fatalf("ParseCrossover: %v", err)
	}
	if p != CrossoverAlternate || p.String() != "alternate" {
		t.Errorf("ParseCrossover = %v", p)
	}

	if _, err := ParseCrossover("zip"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestRandomGenomeLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		g := RandomGenome(rng, 240)
		if len(g) < 1 || len(g) > 240 {
			t.Fatalf("length %d out of [1, 240]", len(g))
		}
	}
}

func repeat(a Amino, n int) Protein {
	p := make(Protein, n)
	for i := range p {
		p[i] = a
	}
	return p
}
