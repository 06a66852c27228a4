package design

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/HZAU-dl/fisheye/internal/probe"
)

// header of the per-gene CSV tables
var header = []string{
	"offset",
	"point1",
	"point2",
	"tm_region",
	"tm1",
	"tm2",
	"tm3",
	"RNAfold_score",
	"conbined_score",
	"primer1",
	"primer2",
}

// WriteCSV writes one row per candidate.
func WriteCSV(w io.Writer, cands []probe.Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	itoa := strconv.Itoa
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	for _, c := range cands {
		row := []string{
			itoa(c.Offset),
			itoa(c.PadMatches),
			itoa(c.AmpMatches),
			itoa(c.TmRegion),
			itoa(c.Tm1),
			itoa(c.Tm2),
			itoa(c.Tm3),
			ftoa(c.Fold),
			ftoa(c.Score),
			c.Pad,
			c.Amp,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeCSVFile(filename string, cands []probe.Candidate) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err = WriteCSV(f, cands); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return f.Close()
}

// Region is the JSON form of a gene's representative region.
type Region struct {
	Chrom   string `json:"chrom"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Strand  string `json:"strand"`
	Support int    `json:"support"`
}

// Output is the JSON document written for a gene.
type Output struct {
	// Gene's name from the gene list
	Gene string `json:"gene"`

	Region Region `json:"region"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to design the gene
	Execution float64 `json:"execution"`

	// Skipped is the number of windows that failed to fold
	Skipped int `json:"skipped"`

	Candidates []probe.Candidate `json:"candidates"`
}

// writeJSON writes a gene's candidates as an Output document.
func writeJSON(filename string, res GeneResult, cands []probe.Candidate, seconds float64) error {
	if cands == nil {
		cands = []probe.Candidate{}
	}

	out := Output{
		Gene: res.Gene,
		Region: Region{
			Chrom:   res.Region.Chrom,
			Start:   res.Region.Start,
			End:     res.Region.End,
			Strand:  string(res.Region.Strand),
			Support: res.Region.Support,
		},
		Time:       time.Now().Format("2006/01/02 15:04:05"),
		Execution:  seconds,
		Skipped:    res.Skipped,
		Candidates: cands,
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return nil
}

// WriteSummary writes a table with a row per gene: its region, the number
// of windows scored and skipped and where its results went (or why it
// failed).
func WriteSummary(w io.Writer, results []GeneResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "gene\tregion\twindows\tskipped\tresult\t\n")
	for _, r := range results {
		region, result := "-", r.Path
		if r.Region.Chrom != "" {
			region = r.Region.String()
		}
		if r.Err != nil {
			result = "error: " + r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t\n", r.Gene, region, r.Windows, r.Skipped, result)
	}
	return tw.Flush()
}
