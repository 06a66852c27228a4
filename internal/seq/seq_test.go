package seq

import (
	"errors"
	"strings"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		want    string
		wantErr bool
	}{
		{
			"upper case",
			"ATGCCN",
			"NGGCAT",
			false,
		},
		{
			"mixed case is preserved",
			"aTgCn",
			"nGcAt",
			false,
		},
		{
			"empty sequence",
			"",
			"",
			false,
		},
		{
			"IUPAC code is not mapped",
			"ATRG",
			"",
			true,
		},
		{
			"RNA uracil is not mapped",
			"AUG",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReverseComplement(tt.seq)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReverseComplement() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnmappedBase) {
				t.Errorf("ReverseComplement() error = %v, want ErrUnmappedBase", err)
			}
			if got != tt.want {
				t.Errorf("ReverseComplement() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverseComplement_involution(t *testing.T) {
	seqs := []string{
		"ATGC",
		"GCGCGCGCGCGCG",
		"aaccggttNNnn",
		"CCAGTGCGTCTATTTAGTGGAGCCTGCAGT",
	}
	for _, s := range seqs {
		rc, err := ReverseComplement(s)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ReverseComplement(rc)
		if err != nil {
			t.Fatal(err)
		}
		if back != s {
			t.Errorf("rc(rc(%q)) = %q", s, back)
		}
	}

	for _, b := range []byte("ATCGatcgNn") {
		c, ok := Complement(b)
		if !ok {
			t.Fatalf("no complement for %q", b)
		}
		if cc, _ := Complement(c); cc != b {
			t.Errorf("complement of complement of %q = %q", b, cc)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("ACGTNacgtn"); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := Validate("ACG-T")
	if !errors.Is(err, ErrUnmappedBase) {
		t.Fatalf("Validate() = %v, want ErrUnmappedBase", err)
	}
	if !strings.Contains(err.Error(), "index 3") {
		t.Errorf("Validate() = %v, want the offending index", err)
	}
}

func TestTm(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want int
	}{
		{"all GC", "GCGCGCGCGCGCG", 52},
		{"all AT", "ATATATATATATA", 26},
		{"mixed", "AATTGGCC", 24},
		{"lower case GC counts", "gcgc", 16},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tm(tt.seq); got != tt.want {
				t.Errorf("Tm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallace(t *testing.T) {
	// 13 GC bases counted over 14
	if got := Wallace(14, 13); got != 54 {
		t.Errorf("Wallace(14, 13) = %v, want 54", got)
	}
	if got, want := Wallace(13, 4), Tm("GCGCAAAAAAAAA"); got != want {
		t.Errorf("Wallace(13, 4) = %v, want Tm() = %v", got, want)
	}
}
