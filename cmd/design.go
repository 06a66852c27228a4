package cmd

import (
	"context"
	"os"

	"github.com/HZAU-dl/fisheye/config"
	"github.com/HZAU-dl/fisheye/internal/design"
	"github.com/spf13/cobra"
)

// designKeys maps the design command's flags to their settings
var designKeys = map[string]string{
	"out":        "output.dir",
	"format":     "output.format",
	"sort":       "output.sort",
	"plot":       "output.plot",
	"mode":       "score.mode",
	"workers":    "workers",
	"min-length": "region.min-length",
	"temp":       "fold.temp",
}

// designCmd designs probes for every gene in a gene list
var designCmd = &cobra.Command{
	Use:   "design [genes] [gtf] [fasta]",
	Short: "Design probe pairs for every gene in a gene list",
	Long: `Design probe pairs for every gene in a gene list

For each gene, the CDS interval supported by the most annotation records
(then the longest) is read from the genome. A 40bp window is slid across it
and every window is scored on:

1. self-complementarity of its pad and amplification probes
2. the spread of its three segments' melting temperatures
3. the free energy of its secondary structure

One table per gene is written to the output directory. Genes without a
usable CDS region are reported and skipped.`,
	Example:                    "  fisheye design genes.txt genes.gtf genome.fa --out primers",
	Args:                       cobra.ExactArgs(3),
	RunE:                       designExec,
	SuggestionsMinimumDistance: 2,
}

// designExec runs the design command against its positional arguments
func designExec(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd.Flags(), designKeys); err != nil {
		return err
	}

	conf, err := config.New()
	if err != nil {
		return err
	}

	in := design.Input{
		Genes:  args[0],
		GTF:    args[1],
		Genome: args[2],
	}

	results, err := design.Run(context.Background(), in, conf)
	if err != nil {
		return err
	}
	return design.WriteSummary(os.Stdout, results)
}

// set flags
func init() {
	designCmd.Flags().StringP("out", "o", config.DefaultOutDir, "output directory, created if missing")
	designCmd.Flags().StringP("format", "f", config.CSV, "output format: csv or json")
	designCmd.Flags().Bool("sort", false, "order each table by ascending score rather than window offset")
	designCmd.Flags().Bool("plot", false, "write an SVG score profile per gene")
	designCmd.Flags().StringP("mode", "m", "per-candidate", "score normalization: per-candidate or population")
	designCmd.Flags().IntP("workers", "w", 1, "number of genes designed in parallel (0 uses every CPU)")
	designCmd.Flags().Int("min-length", 40, "ignore CDS records of this length or shorter")
	designCmd.Flags().Float64("temp", 37, "folding temperature in Celsius")

	RootCmd.AddCommand(designCmd)
}
