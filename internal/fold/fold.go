// Package fold estimates the minimum free energy of a nucleic acid's
// secondary structure.
package fold

import (
	"errors"
	"fmt"
	"math"
	"strings"

	seqfold "gitlab.com/folago/seqfold.go"
)

// ErrFold is returned when the energy model fails or gives a non-finite energy.
var ErrFold = errors.New("fold failed")

// DefaultTemp is the folding temperature in Celsius.
const DefaultTemp = 37.0

// Folder computes the minimum free energy (kcal/mol) of a sequence.
// More negative energies are more stable structures.
type Folder interface {
	Energy(seq string) (float64, error)
}

// Func adapts a plain function to a Folder.
type Func func(seq string) (float64, error)

// Energy calls f(seq).
func (f Func) Energy(seq string) (float64, error) {
	return f(seq)
}

// Seqfold folds with the Zuker algorithm and nearest-neighbor energies.
type Seqfold struct {
	// Temp is the folding temperature in Celsius
	Temp float64

	// RNA folds the sequence as RNA (T to U) rather than DNA
	RNA bool
}

// Energy returns the sum of the energies of the MFE structures, rounded
// to two decimal places.
func (s Seqfold) Energy(seq string) (e float64, err error) {
	seq = strings.ToUpper(seq)
	if s.RNA {
		seq = strings.ReplaceAll(seq, "T", "U")
	}

	// the model panics on sequences that are neither DNA nor RNA, ex: with an N
	defer func() {
		if r := recover(); r != nil {
			e, err = 0, fmt.Errorf("%w on %s: %v", ErrFold, seq, r)
		}
	}()

	var sum float64
	for _, st := range seqfold.Fold(seq, s.Temp) {
		sum += st.E
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w on %s: energy is %v", ErrFold, seq, sum)
	}
	return seqfold.RoundFloat(sum, 2), nil
}
