// Package seq holds the base-level helpers shared by every other package:
// reverse complementing, GC counting and the Wallace melting temperature.
package seq

import (
	"errors"
	"fmt"
)

// ErrUnmappedBase is returned when a sequence holds a byte outside the
// complement table.
var ErrUnmappedBase = errors.New("unmapped base")

// complement maps each base to its pair. zero means "no pair"
var complement = func() (t [256]byte) {
	t['A'], t['T'] = 'T', 'A'
	t['C'], t['G'] = 'G', 'C'
	t['a'], t['t'] = 't', 'a'
	t['c'], t['g'] = 'g', 'c'
	t['N'], t['n'] = 'N', 'n'
	return
}()

// Complement returns the pair of a single base and whether one exists.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// ReverseComplement reverses s and complements each base.
//
// Only A, T, C, G and N (either case) are recognized. Anything else
// fails with ErrUnmappedBase rather than producing a corrupt sequence.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", unmapped(b, n-1-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// Validate returns an ErrUnmappedBase for the first base in s that
// has no complement.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return unmapped(s[i], i)
		}
	}
	return nil
}

func unmapped(b byte, i int) error {
	return fmt.Errorf("%w %q at index %d", ErrUnmappedBase, b, i)
}

// GC counts the G and C bases in s, ignoring case.
func GC(s string) (gc int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return gc
}

// Tm estimates melting temperature with the Wallace rule:
// 2 degrees per A/T and 4 degrees per G/C.
func Tm(s string) int {
	return Wallace(len(s), GC(s))
}

// Wallace is the Wallace rule Tm of n bases, gc of them G or C.
func Wallace(n, gc int) int {
	return 2*(n-gc) + 4*gc
}
