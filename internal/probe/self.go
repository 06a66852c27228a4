package probe

import "github.com/HZAU-dl/fisheye/internal/seq"

// DefaultMinMatch is the length of the substrings compared by SelfMatch.
const DefaultMinMatch = 4

// SelfMatch counts the minMatch-long substrings of probe that also occur
// in its reverse complement, one count per (i, j) pair of start offsets.
//
// Pairs on the diagonal i+j+minMatch-2 == len(probe) are not counted.
// Probes shorter than minMatch have no matches.
func SelfMatch(probe string, minMatch int) (int, error) {
	rc, err := seq.ReverseComplement(probe)
	if err != nil {
		return 0, err
	}

	n := len(probe)
	pairs := 0
	for i := 0; i+minMatch <= n; i++ {
		sub := probe[i : i+minMatch]
		for j := 0; j+minMatch <= n; j++ {
			if i+j+minMatch-2 == n {
				continue
			}
			if sub == rc[j:j+minMatch] {
				pairs++
			}
		}
	}
	return pairs, nil
}
