package probe

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/HZAU-dl/fisheye/internal/fold"
	"github.com/HZAU-dl/fisheye/internal/seq"
)

// Candidate is a scored window and the probe pair built from it.
type Candidate struct {
	// Offset is the window's start index in the gene sequence
	Offset int `json:"offset"`

	// PadMatches and AmpMatches are the self-complementary 4-mer pairs in each probe
	PadMatches int `json:"padMatches"`
	AmpMatches int `json:"ampMatches"`

	// TmRegion is the spread of the three segment melting temperatures
	TmRegion int `json:"tmRegion"`

	Tm1 int `json:"tm1"`
	Tm2 int `json:"tm2"`
	Tm3 int `json:"tm3"`

	GC1 int `json:"gc1"`
	GC2 int `json:"gc2"`
	GC3 int `json:"gc3"`

	// Fold is the window's minimum free energy
	Fold float64 `json:"fold"`

	// Score is the composite score, lower is better
	Score float64 `json:"score"`

	// Pad and Amp are the probe sequences
	Pad string `json:"pad"`
	Amp string `json:"amp"`
}

// metrics are the values combined into the composite score
func (c Candidate) metrics() [4]float64 {
	return [4]float64{float64(c.PadMatches), float64(c.AmpMatches), float64(c.TmRegion), c.Fold}
}

// Options are the settings of a scan.
type Options struct {
	Layout Layout

	// MinMatch is the substring length used for self-matching
	MinMatch int

	// Folder gives each window's fold energy
	Folder fold.Folder

	// Mode selects the composite score normalization
	Mode Mode

	// Sort orders the candidates by ascending score, rather than by offset
	Sort bool
}

// Result is the outcome of scanning one sequence.
type Result struct {
	Candidates []Candidate

	// Skipped is the number of windows dropped because folding failed
	Skipped int
}

// Scan slides the layout's window across s, scoring every offset from 0
// through len(s)-window. Sequences shorter than the window have no
// candidates.
//
// A window whose fold fails is skipped and counted. A base without a
// complement fails the whole scan.
func Scan(ctx context.Context, s string, opts Options) (Result, error) {
	l := opts.Layout
	if err := l.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Folder == nil {
		return Result{}, fmt.Errorf("no folder to score windows")
	}
	if opts.MinMatch <= 0 {
		opts.MinMatch = DefaultMinMatch
	}
	if err := seq.Validate(s); err != nil {
		return Result{}, err
	}

	var res Result
	for i := 0; i+l.Window <= len(s); i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		c, err := score(s[i:i+l.Window], opts)
		if err != nil {
			if isFoldErr(err) {
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("failed to score window at %d: %w", i, err)
		}
		c.Offset = i
		res.Candidates = append(res.Candidates, c)
	}

	if opts.Mode == Population {
		Rescore(res.Candidates)
	}

	if opts.Sort {
		sort.SliceStable(res.Candidates, func(i, j int) bool {
			return res.Candidates[i].Score < res.Candidates[j].Score
		})
	}

	return res, nil
}

// foldErr marks a failed fold so the window can be skipped
type foldErr struct{ err error }

func (e foldErr) Error() string { return e.err.Error() }
func (e foldErr) Unwrap() error { return e.err }

func isFoldErr(err error) bool {
	_, ok := err.(foldErr)
	return ok
}

// score builds and scores a single window
func score(window string, opts Options) (Candidate, error) {
	energy, err := opts.Folder.Energy(window)
	if err != nil {
		return Candidate{}, foldErr{err}
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return Candidate{}, foldErr{fmt.Errorf("%w: energy is %v", fold.ErrFold, energy)}
	}

	th := opts.Layout.Thermal(window)

	pad, amp, err := opts.Layout.Probes(window)
	if err != nil {
		return Candidate{}, err
	}

	padMatches, err := SelfMatch(pad, opts.MinMatch)
	if err != nil {
		return Candidate{}, err
	}
	ampMatches, err := SelfMatch(amp, opts.MinMatch)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{
		PadMatches: padMatches,
		AmpMatches: ampMatches,
		TmRegion:   th.Region,
		Tm1:        th.Tm1,
		Tm2:        th.Tm2,
		Tm3:        th.Tm3,
		GC1:        th.GC1,
		GC2:        th.GC2,
		GC3:        th.GC3,
		Fold:       energy,
		Score:      Normalize(float64(padMatches), float64(ampMatches), float64(th.Region), energy),
		Pad:        pad,
		Amp:        amp,
	}, nil
}
