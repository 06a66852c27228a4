package annot

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoViableRegion is returned when a gene has no CDS record longer
// than the minimum region length.
var ErrNoViableRegion = errors.New("no viable CDS region")

// DefaultMinLength is the default minimum length of a CDS record.
const DefaultMinLength = 40

// Region is the coding interval chosen to represent a gene.
type Region struct {
	Chrom  string
	Start  int
	End    int
	Strand byte

	// Support is the number of annotation records with this exact interval
	Support int
}

// Length is End - Start.
func (r Region) Length() int {
	return r.End - r.Start
}

// String formats the region as chrom:start-end(strand)
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d(%c)", r.Chrom, r.Start, r.End, r.Strand)
}

// regionKey is the grouping key of a CDS interval
type regionKey struct {
	chrom      string
	start, end int
	length     int
	strand     byte
}

// Select picks the representative region from the annotation records of
// a single gene.
//
// Only CDS records longer than minLength are considered. Identical
// intervals are grouped and the group supported by the most records wins,
// then the longest. Remaining ties go to the interval that sorts first by
// chromosome, start, end and strand, so the result doesn't depend on the
// order of the records.
func Select(records []Record, minLength int) (Region, error) {
	support := make(map[regionKey]int)
	for _, r := range records {
		if r.Type != "CDS" || r.Length <= minLength {
			continue
		}
		support[regionKey{r.Chrom, r.Start, r.End, r.Length, r.Strand}]++
	}

	if len(support) == 0 {
		return Region{}, ErrNoViableRegion
	}

	keys := make([]regionKey, 0, len(support))
	for k := range support {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if support[a] != support[b] {
			return support[a] > support[b]
		}
		if a.length != b.length {
			return a.length > b.length
		}
		if a.chrom != b.chrom {
			return a.chrom < b.chrom
		}
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end < b.end
		}
		return a.strand < b.strand
	})

	best := keys[0]
	return Region{
		Chrom:   best.chrom,
		Start:   best.start,
		End:     best.end,
		Strand:  best.strand,
		Support: support[best],
	}, nil
}
