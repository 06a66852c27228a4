package probe

import (
	"errors"
	"testing"

	"github.com/HZAU-dl/fisheye/internal/seq"
)

func TestSelfMatch(t *testing.T) {
	tests := []struct {
		name     string
		probe    string
		minMatch int
		want     int
	}{
		{"shorter than the match length", "GC", 4, 0},
		{"one short of the match length", "GCG", 4, 0},
		{"single palindromic 4-mer", "GCGC", 4, 1},
		{"no complement", "AAAA", 4, 0},
		{"palindrome with the diagonal excluded", "AAAATTTT", 4, 4},
		{"repeated palindrome", "ACGTACGT", 4, 6},
		// AA, AT and TT match at i=j; i=j=2 lies on the excluded i+j+k-2 == L diagonal
		{"shorter match length", "AATT", 2, 2},
		{"repeated dimer with the diagonal excluded", "GCGC", 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelfMatch(tt.probe, tt.minMatch)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SelfMatch(%q, %d) = %v, want %v", tt.probe, tt.minMatch, got, tt.want)
			}
		})
	}
}

func TestSelfMatch_unmapped(t *testing.T) {
	if _, err := SelfMatch("ACGTX", 4); !errors.Is(err, seq.ErrUnmappedBase) {
		t.Errorf("SelfMatch() error = %v, want ErrUnmappedBase", err)
	}
}
