// Package design runs the probe scan over every gene of a gene list and
// writes the per-gene tables.
package design

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HZAU-dl/fisheye/config"
	"github.com/HZAU-dl/fisheye/internal/annot"
	"github.com/HZAU-dl/fisheye/internal/genome"
	"github.com/HZAU-dl/fisheye/internal/probe"
	"github.com/HZAU-dl/fisheye/internal/seq"
	"golang.org/x/sync/errgroup"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Fetcher returns the half-open [start, end) slice of a chromosome.
type Fetcher interface {
	Fetch(chrom string, start, end int) (string, error)
}

// Input is the paths of the files a run reads.
type Input struct {
	// Genes is a single column list of gene names
	Genes string

	// GTF is the genome annotation
	GTF string

	// Genome is the reference FASTA
	Genome string
}

// GeneResult is the outcome of designing probes for one gene.
type GeneResult struct {
	Gene string

	// Region is the representative CDS region, zero if none was found
	Region annot.Region

	// Windows is the number of scored windows
	Windows int

	// Skipped is the number of windows whose fold failed
	Skipped int

	// Path is the table written for the gene
	Path string

	// Err is why the gene failed, nil if it succeeded
	Err error
}

// Run reads the inputs, designs probes for every gene and writes the
// results to the output directory. Genes that fail are reported in the
// results and don't stop the run. Failing to read an input or write an
// output does.
func Run(ctx context.Context, in Input, conf *config.Config) ([]GeneResult, error) {
	genes, err := annot.ReadGenesFile(in.Genes)
	if err != nil {
		return nil, err
	}

	if conf.Verbose {
		stderr.Printf("reading GTF: %s\n", in.GTF)
	}
	records, err := annot.ReadGTFFile(in.GTF)
	if err != nil {
		return nil, err
	}

	g, err := genome.Open(in.Genome)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	return Design(ctx, genes, annot.ByGene(records), g, conf)
}

// Design designs probes for each gene, up to conf.Workers genes at a
// time, and returns the results in gene list order.
func Design(ctx context.Context, genes []string, records map[string][]annot.Record, fetcher Fetcher, conf *config.Config) ([]GeneResult, error) {
	if err := os.MkdirAll(conf.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", conf.Output.Dir, err)
	}

	results := make([]GeneResult, len(genes))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(conf.Workers, 1))

	for i, gene := range genes {
		i, gene := i, gene
		eg.Go(func() (err error) {
			results[i], err = designGene(ctx, gene, records[gene], fetcher, conf)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// designGene returns an error only when the whole run should stop.
// Problems with the gene itself are in GeneResult.Err.
func designGene(ctx context.Context, gene string, records []annot.Record, fetcher Fetcher, conf *config.Config) (GeneResult, error) {
	start := time.Now()
	res := GeneResult{Gene: gene}

	fail := func(err error) (GeneResult, error) {
		res.Err = err
		stderr.Printf("failed to design probes for %s: %v\n", gene, err)
		return res, nil
	}

	region, err := annot.Select(records, conf.Region.MinLength)
	if err != nil {
		return fail(err)
	}
	res.Region = region

	s, err := fetcher.Fetch(region.Chrom, region.Start, region.End)
	if err != nil {
		return fail(err)
	}
	if region.Strand == '-' {
		if s, err = seq.ReverseComplement(s); err != nil {
			return fail(err)
		}
	}

	if conf.Verbose {
		stderr.Printf("designing probes for %s: %s\n", gene, region)
	}

	scan, err := probe.Scan(ctx, s, conf.ScanOptions())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}
		return fail(err)
	}
	res.Windows = len(scan.Candidates)
	res.Skipped = scan.Skipped
	if scan.Skipped > 0 {
		stderr.Printf("%s: skipped %d windows that failed to fold\n", gene, scan.Skipped)
	}

	base := filepath.Join(conf.Output.Dir, fileName(gene))
	if conf.Output.Format == config.JSON {
		res.Path = base + ".json"
		err = writeJSON(res.Path, res, scan.Candidates, time.Since(start).Seconds())
	} else {
		res.Path = base + ".csv"
		err = writeCSVFile(res.Path, scan.Candidates)
	}
	if err != nil {
		return res, err
	}

	if conf.Output.Plot {
		if err = writePlot(base+".svg", gene, scan.Candidates); err != nil {
			return res, err
		}
	}

	if conf.Verbose {
		stderr.Printf("saved results to: %s\n", res.Path)
	}
	return res, nil
}

// fileName makes a gene name safe to use as a file name
func fileName(gene string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(gene)
}
