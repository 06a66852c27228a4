// Package probe scores candidate pad and amplification probe pairs along
// a gene's sequence.
package probe

import (
	"fmt"

	"github.com/HZAU-dl/fisheye/internal/seq"
)

const (
	// PadLinker joins the two arms of the pad probe
	PadLinker = "CCAGTGCGTCTATTTAGTGGAGCCTGCAGT"

	// AmpLinker is appended to the amplification probe
	AmpLinker = "ACTGCAGGCTCCA"
)

// Span is a half-open [Start, End) range within a window.
type Span struct {
	Start int `mapstructure:"start" json:"start"`
	End   int `mapstructure:"end" json:"end"`
}

// Len is End - Start
func (s Span) Len() int {
	return s.End - s.Start
}

// Layout describes how a window is cut into the three annealing segments
// and the held-out base between the second and third segment.
type Layout struct {
	// Window is the number of bases scored at each offset
	Window int `mapstructure:"window"`

	Seg1 Span `mapstructure:"seg1"`
	Seg2 Span `mapstructure:"seg2"`
	Seg3 Span `mapstructure:"seg3"`

	// Hold is the index of the base placed between the amp probe and its linker
	Hold int `mapstructure:"hold"`

	PadLinker string `mapstructure:"pad-linker"`
	AmpLinker string `mapstructure:"amp-linker"`

	// Tm3Length is the length used in the third segment's Wallace Tm.
	// Zero uses the segment's own length.
	Tm3Length int `mapstructure:"tm3-length"`
}

// DefaultTm3Length is the 14 base count used for the third segment's Tm,
// one more than the default segment holds.
const DefaultTm3Length = 14

// DefaultLayout is the 40bp window split into 13/13/1/13 bases.
func DefaultLayout() Layout {
	return Layout{
		Window:    40,
		Seg1:      Span{0, 13},
		Seg2:      Span{13, 26},
		Seg3:      Span{27, 40},
		Hold:      26,
		PadLinker: PadLinker,
		AmpLinker: AmpLinker,
		Tm3Length: DefaultTm3Length,
	}
}

// Validate checks that every segment and the held-out base fit in the window.
func (l Layout) Validate() error {
	if l.Window <= 0 {
		return fmt.Errorf("window length must be positive, got %d", l.Window)
	}

	for i, s := range []Span{l.Seg1, l.Seg2, l.Seg3} {
		if s.Start < 0 || s.End > l.Window || s.Len() <= 0 {
			return fmt.Errorf("segment %d [%d, %d) is not within the %dbp window", i+1, s.Start, s.End, l.Window)
		}
	}

	if l.Hold < 0 || l.Hold >= l.Window {
		return fmt.Errorf("held-out base %d is not within the %dbp window", l.Hold, l.Window)
	}

	if l.Tm3Length < 0 {
		return fmt.Errorf("tm3 length must not be negative, got %d", l.Tm3Length)
	}

	if err := seq.Validate(l.PadLinker + l.AmpLinker); err != nil {
		return fmt.Errorf("bad linker: %w", err)
	}
	return nil
}

// Probes builds the pad and amplification probes for a window:
//
//	pad = rc(seg1) + pad linker + rc(seg2)
//	amp = rc(seg3) + held-out base + amp linker
func (l Layout) Probes(window string) (pad, amp string, err error) {
	rc1, err := seq.ReverseComplement(window[l.Seg1.Start:l.Seg1.End])
	if err != nil {
		return "", "", err
	}
	rc2, err := seq.ReverseComplement(window[l.Seg2.Start:l.Seg2.End])
	if err != nil {
		return "", "", err
	}
	rc3, err := seq.ReverseComplement(window[l.Seg3.Start:l.Seg3.End])
	if err != nil {
		return "", "", err
	}

	pad = rc1 + l.PadLinker + rc2
	amp = rc3 + window[l.Hold:l.Hold+1] + l.AmpLinker
	return pad, amp, nil
}

// Thermal holds the Wallace melting temperatures and GC counts of a
// window's three segments.
type Thermal struct {
	Tm1, Tm2, Tm3 int
	GC1, GC2, GC3 int

	// Region is the spread between the hottest and coolest segment
	Region int
}

// Thermal computes the segment melting temperatures of a window.
func (l Layout) Thermal(window string) Thermal {
	s1 := window[l.Seg1.Start:l.Seg1.End]
	s2 := window[l.Seg2.Start:l.Seg2.End]
	s3 := window[l.Seg3.Start:l.Seg3.End]

	n3 := len(s3)
	if l.Tm3Length > 0 {
		n3 = l.Tm3Length
	}

	th := Thermal{
		Tm1: seq.Tm(s1),
		Tm2: seq.Tm(s2),
		Tm3: seq.Wallace(n3, seq.GC(s3)),
		GC1: seq.GC(s1),
		GC2: seq.GC(s2),
		GC3: seq.GC(s3),
	}
	th.Region = max(th.Tm1, th.Tm2, th.Tm3) - min(th.Tm1, th.Tm2, th.Tm3)
	return th
}
