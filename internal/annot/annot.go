// Package annot reads gene lists and GTF annotations and picks the
// representative coding region of each gene.
package annot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

// Record is a single annotation row.
//
// Start and End are the GTF column values as written. The sequence of a
// record is read as the half-open [Start, End) slice of its chromosome.
type Record struct {
	// Chrom is the sequence (chromosome) name
	Chrom string

	// Type is the feature type, ex: "CDS", "exon"
	Type string

	Start int
	End   int

	// Strand is '+', '-' or '.'
	Strand byte

	// Gene is parsed from the gene_name attribute
	Gene string

	// Length is End - Start
	Length int
}

// ReadGenes reads a single column list of gene identifiers. Only the
// first field of each row is used and blank rows are skipped.
func ReadGenes(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	var genes []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read gene list: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if g := strings.TrimSpace(row[0]); g != "" {
			genes = append(genes, g)
		}
	}
	return genes, nil
}

// ReadGenesFile is ReadGenes on a file path.
func ReadGenesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gene list %s: %w", path, err)
	}
	defer f.Close()
	return ReadGenes(f)
}

// ReadGTF reads every feature of a GTF stream.
func ReadGTF(r io.Reader) ([]Record, error) {
	in := gff.NewReader(r)

	var records []Record
	for {
		f, err := in.Read()
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("failed to read GTF feature %d: %w", len(records)+1, err)
			}
			break
		}

		gf, ok := f.(*gff.Feature)
		if !ok {
			continue
		}
		records = append(records, newRecord(gf))
	}
	return records, nil
}

// ReadGTFFile is ReadGTF on a file path.
func ReadGTFFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GTF %s: %w", path, err)
	}
	defer f.Close()
	return ReadGTF(f)
}

// newRecord converts a parsed feature back to GTF column values.
// the gff reader moves starts to 0-based so the column value is FeatStart+1
func newRecord(gf *gff.Feature) Record {
	start := gf.FeatStart + 1
	return Record{
		Chrom:  gf.SeqName,
		Type:   gf.Feature,
		Start:  start,
		End:    gf.FeatEnd,
		Strand: strandByte(gf.FeatStrand),
		Gene:   strings.Trim(strings.TrimSpace(gf.FeatAttributes.Get("gene_name")), `"`),
		Length: gf.FeatEnd - start,
	}
}

func strandByte(s seq.Strand) byte {
	switch s {
	case seq.Plus:
		return '+'
	case seq.Minus:
		return '-'
	default:
		return '.'
	}
}

// ByGene groups records by gene name, keeping file order within each gene.
// Records without a gene name are dropped.
func ByGene(records []Record) map[string][]Record {
	genes := make(map[string][]Record)
	for _, r := range records {
		if r.Gene == "" {
			continue
		}
		genes[r.Gene] = append(genes[r.Gene], r)
	}
	return genes
}
