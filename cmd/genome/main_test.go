package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/codonlife/genetics"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, genetics.MustParseGenome("augcacuaaauggcauag"), genetics.NewRibosome(math.Pi, 50))
	out := buf.String()

	for _, want := range []string{
		"genome   augcacuaaauggcauag (18 symbols)",
		"frames   2",
		"  [0] 0..9 (stop) his",
		"  [1] 9..18 (stop) ala",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatProtein(t *testing.T) {
	tests := []struct {
		p    genetics.Protein
		want string
	}{
		{nil, "(empty)"},
		{genetics.Protein{genetics.Ala}, "ala"},
		{genetics.Protein{genetics.His, genetics.Lys}, "his-lys"},
	}
	for _, tt := range tests {
		if got := formatProtein(tt.p); got != tt.want {
			t.Errorf("formatProtein(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
