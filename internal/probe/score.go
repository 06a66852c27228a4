package probe

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Mode selects how the composite score is normalized.
type Mode string

const (
	// PerCandidate z-scores a candidate's four metrics against each other
	PerCandidate Mode = "per-candidate"

	// Population z-scores each metric against every window of the gene
	Population Mode = "population"
)

// ParseMode parses a Mode name. An empty name is PerCandidate.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", PerCandidate:
		return PerCandidate, nil
	case Population:
		return Population, nil
	}
	return "", fmt.Errorf("unknown score mode %q, expected %q or %q", s, PerCandidate, Population)
}

// Normalize sums the z-scores of the four metrics, using the population
// mean and standard deviation of the four values themselves.
//
// Four identical values have no spread and score 0.
func Normalize(padMatches, ampMatches, tmRegion, foldScore float64) float64 {
	values := []float64{padMatches, ampMatches, tmRegion, foldScore}
	mean, std := stat.PopMeanStdDev(values, nil)
	if std == 0 {
		return 0
	}

	score := 0.0
	for _, v := range values {
		score += (v - mean) / std
	}
	return score
}

// Rescore replaces each candidate's Score with the sum of its metrics'
// z-scores across all the candidates. A metric with no spread across the
// candidates contributes 0.
func Rescore(cands []Candidate) {
	if len(cands) == 0 {
		return
	}

	metrics := [4][]float64{}
	for i := range metrics {
		metrics[i] = make([]float64, len(cands))
	}
	for c, cand := range cands {
		for i, v := range cand.metrics() {
			metrics[i][c] = v
		}
	}

	var means, stds [4]float64
	for i, m := range metrics {
		means[i], stds[i] = stat.PopMeanStdDev(m, nil)
	}

	for c := range cands {
		score := 0.0
		for i, v := range cands[c].metrics() {
			if stds[i] == 0 {
				continue
			}
			score += (v - means[i]) / stds[i]
		}
		cands[c].Score = score
	}
}
