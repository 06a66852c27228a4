// Package genome gives random access to a reference FASTA through its
// faidx (.fai) index.
package genome

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/fai"
)

// Genome is an indexed FASTA file.
type Genome struct {
	f   *os.File
	idx fai.Index
	fa  *fai.File
}

// Open opens a FASTA file and its index. The index is read from
// path+".fai" when it exists and is built by scanning the FASTA otherwise.
func Open(path string) (*Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open genome %s: %w", path, err)
	}

	idx, err := readIndex(path, f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Genome{
		f:   f,
		idx: idx,
		fa:  fai.NewFile(f, idx),
	}, nil
}

func readIndex(path string, f *os.File) (fai.Index, error) {
	if faiFile, err := os.Open(path + ".fai"); err == nil {
		defer faiFile.Close()
		idx, err := fai.ReadFrom(faiFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read index %s.fai: %w", path, err)
		}
		return idx, nil
	}

	idx, err := fai.NewIndex(f)
	if err != nil {
		return nil, fmt.Errorf("failed to index genome %s: %w", path, err)
	}
	return idx, nil
}

// WriteIndex writes the genome's index in samtools faidx format.
func (g *Genome) WriteIndex(w io.Writer) error {
	return fai.WriteTo(w, g.idx)
}

// Len returns the length of a chromosome and whether it is in the index.
func (g *Genome) Len(chrom string) (int, bool) {
	rec, ok := g.idx[chrom]
	return rec.Length, ok
}

// Fetch returns the half-open [start, end) slice of a chromosome.
func (g *Genome) Fetch(chrom string, start, end int) (string, error) {
	if _, ok := g.idx[chrom]; !ok {
		return "", fmt.Errorf("chromosome %s is not in the genome", chrom)
	}

	s, err := g.fa.SeqRange(chrom, start, end)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s:%d-%d: %w", chrom, start, end, err)
	}

	var sb strings.Builder
	if _, err = io.Copy(&sb, s); err != nil {
		return "", fmt.Errorf("failed to read %s:%d-%d: %w", chrom, start, end, err)
	}
	return sb.String(), nil
}

// Close closes the underlying FASTA file.
func (g *Genome) Close() error {
	return g.f.Close()
}
