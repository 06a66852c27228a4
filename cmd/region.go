package cmd

import (
	"fmt"

	"github.com/HZAU-dl/fisheye/config"
	"github.com/HZAU-dl/fisheye/internal/annot"
	"github.com/spf13/cobra"
)

// regionKeys maps the region command's flags to their settings
var regionKeys = map[string]string{
	"min-length": "region.min-length",
}

// regionCmd prints the representative region of a gene
var regionCmd = &cobra.Command{
	Use:                        "region [gene]",
	Short:                      "Find the representative CDS region of a gene",
	Example:                    "  fisheye region Actb --gtf genes.gtf",
	Args:                       cobra.ExactArgs(1),
	RunE:                       regionExec,
	SuggestionsMinimumDistance: 2,
}

func regionExec(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd.Flags(), regionKeys); err != nil {
		return err
	}

	conf, err := config.New()
	if err != nil {
		return err
	}

	gtf, _ := cmd.Flags().GetString("gtf")
	records, err := annot.ReadGTFFile(gtf)
	if err != nil {
		return err
	}

	gene := args[0]
	region, err := annot.Select(annot.ByGene(records)[gene], conf.Region.MinLength)
	if err != nil {
		return fmt.Errorf("%s: %w", gene, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\n", gene, region, region.Length(), region.Support)
	return nil
}

// set flags
func init() {
	regionCmd.Flags().StringP("gtf", "g", "", "genome annotation <GTF>")
	regionCmd.Flags().Int("min-length", 40, "ignore CDS records of this length or shorter")
	regionCmd.MarkFlagRequired("gtf")

	RootCmd.AddCommand(regionCmd)
}
