package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/HZAU-dl/fisheye/config"
	"github.com/HZAU-dl/fisheye/internal/design"
	"github.com/HZAU-dl/fisheye/internal/probe"
	"github.com/spf13/cobra"
)

// scanKeys maps the scan command's flags to their settings
var scanKeys = map[string]string{
	"sort": "output.sort",
	"mode": "score.mode",
	"temp": "fold.temp",
}

// scanCmd scores the windows of a single sequence
var scanCmd = &cobra.Command{
	Use:                        "scan [seq]",
	Short:                      "Score every probe window of a sequence",
	Long:                       "Score every probe window of a sequence and write the table to stdout <CSV>",
	Example:                    "  fisheye scan ATGGCTAGCAGGTCCATTGCTACGGATCCAGTTGACCATGGCAAGTCTAG",
	Args:                       cobra.ExactArgs(1),
	RunE:                       scanExec,
	SuggestionsMinimumDistance: 2,
}

func scanExec(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd.Flags(), scanKeys); err != nil {
		return err
	}

	conf, err := config.New()
	if err != nil {
		return err
	}

	res, err := probe.Scan(context.Background(), strings.TrimSpace(args[0]), conf.ScanOptions())
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		stderr.Printf("skipped %d windows that failed to fold\n", res.Skipped)
	}
	return design.WriteCSV(os.Stdout, res.Candidates)
}

// set flags
func init() {
	scanCmd.Flags().Bool("sort", false, "order by ascending score rather than window offset")
	scanCmd.Flags().StringP("mode", "m", "per-candidate", "score normalization: per-candidate or population")
	scanCmd.Flags().Float64("temp", 37, "folding temperature in Celsius")

	RootCmd.AddCommand(scanCmd)
}
