package design

import (
	"bytes"
	"strings"
	"testing"

	"github.com/HZAU-dl/fisheye/internal/annot"
	"github.com/HZAU-dl/fisheye/internal/probe"
)

func TestWriteCSV(t *testing.T) {
	cands := []probe.Candidate{
		{
			Offset:     3,
			PadMatches: 12,
			AmpMatches: 2,
			TmRegion:   6,
			Tm1:        38,
			Tm2:        40,
			Tm3:        44,
			Fold:       -3.5,
			Score:      -0.25,
			Pad:        "PAD",
			Amp:        "AMP",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cands); err != nil {
		t.Fatal(err)
	}

	want := "offset,point1,point2,tm_region,tm1,tm2,tm3,RNAfold_score,conbined_score,primer1,primer2\n" +
		"3,12,2,6,38,40,44,-3.5,-0.25,PAD,AMP\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestWriteSummary(t *testing.T) {
	results := []GeneResult{
		{
			Gene:    "g1",
			Region:  annot.Region{Chrom: "chr1", Start: 100, End: 150, Strand: '+', Support: 2},
			Windows: 11,
			Path:    "primers/g1.csv",
		},
		{
			Gene: "g2",
			Err:  annot.ErrNoViableRegion,
		},
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, results); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("WriteSummary() wrote %d lines, want 3", len(lines))
	}
	if f := strings.Fields(lines[1]); len(f) != 5 || f[1] != "chr1:100-150(+)" || f[2] != "11" || f[4] != "primers/g1.csv" {
		t.Errorf("WriteSummary() g1 row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "error: no viable CDS region") {
		t.Errorf("WriteSummary() g2 row = %q", lines[2])
	}
}

func TestProfile_empty(t *testing.T) {
	p, err := profile("g1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "g1 probe scores" {
		t.Errorf("profile() title = %q", p.Title.Text)
	}
}
