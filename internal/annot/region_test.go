package annot

import (
	"errors"
	"reflect"
	"testing"
)

func cds(chrom string, start, end int, strand byte) Record {
	return Record{
		Chrom:  chrom,
		Type:   "CDS",
		Start:  start,
		End:    end,
		Strand: strand,
		Gene:   "g1",
		Length: end - start,
	}
}

func repeat(r Record, n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestSelect(t *testing.T) {
	short := cds("chr1", 0, 40, '+') // length == min, filtered out
	exon := cds("chr1", 500, 900, '+')
	exon.Type = "exon"

	tests := []struct {
		name    string
		records []Record
		want    Region
		wantErr error
	}{
		{
			"highest support wins over length",
			append(repeat(cds("chr1", 100, 200, '+'), 3), repeat(cds("chr1", 300, 350, '+'), 5)...),
			Region{Chrom: "chr1", Start: 300, End: 350, Strand: '+', Support: 5},
			nil,
		},
		{
			"highest support wins regardless of order",
			append(repeat(cds("chr1", 300, 350, '+'), 5), repeat(cds("chr1", 100, 200, '+'), 3)...),
			Region{Chrom: "chr1", Start: 300, End: 350, Strand: '+', Support: 5},
			nil,
		},
		{
			"equal support picks the longer interval",
			append(repeat(cds("chr2", 100, 160, '-'), 2), repeat(cds("chr2", 400, 600, '-'), 2)...),
			Region{Chrom: "chr2", Start: 400, End: 600, Strand: '-', Support: 2},
			nil,
		},
		{
			"exons and short CDS are ignored",
			[]Record{short, exon, cds("chr1", 10, 60, '+')},
			Region{Chrom: "chr1", Start: 10, End: 60, Strand: '+', Support: 1},
			nil,
		},
		{
			"no CDS longer than the minimum",
			[]Record{short, exon},
			Region{},
			ErrNoViableRegion,
		},
		{
			"no records",
			nil,
			Region{},
			ErrNoViableRegion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.records, DefaultMinLength)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Select() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Select() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ties on support and length must not depend on record order
func TestSelect_tieBreak(t *testing.T) {
	a := cds("chr1", 900, 1000, '+')
	b := cds("chr1", 100, 200, '+')
	c := cds("chr10", 50, 150, '+')

	want := Region{Chrom: "chr1", Start: 100, End: 200, Strand: '+', Support: 1}
	orders := [][]Record{
		{a, b, c},
		{c, b, a},
		{b, c, a},
	}
	for _, records := range orders {
		got, err := Select(records, DefaultMinLength)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Select(%v) = %+v, want %+v", records, got, want)
		}
	}
}

func TestRegion_String(t *testing.T) {
	r := Region{Chrom: "chr3", Start: 10, End: 70, Strand: '-'}
	if got := r.String(); got != "chr3:10-70(-)" {
		t.Errorf("Region.String() = %q", got)
	}
	if r.Length() != 60 {
		t.Errorf("Region.Length() = %d", r.Length())
	}
}
