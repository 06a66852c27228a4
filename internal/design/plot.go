package design

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/HZAU-dl/fisheye/internal/probe"
)

// writePlot saves an SVG of the composite score and Tm spread along the gene.
func writePlot(filename, gene string, cands []probe.Candidate) error {
	p, err := profile(gene, cands)
	if err != nil {
		return err
	}

	if err = p.Save(10*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", filename, err)
	}
	return nil
}

// profile plots score and Tm spread against window offset
func profile(gene string, cands []probe.Candidate) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s probe scores", gene)
	p.X.Label.Text = "Window offset (bp)"
	p.Y.Label.Text = "Score"
	p.Add(plotter.NewGrid())

	if len(cands) == 0 {
		return p, nil
	}

	byOffset := append([]probe.Candidate(nil), cands...)
	sort.Slice(byOffset, func(i, j int) bool {
		return byOffset[i].Offset < byOffset[j].Offset
	})

	scores := make(plotter.XYs, len(byOffset))
	spreads := make(plotter.XYs, len(byOffset))
	for i, c := range byOffset {
		scores[i].X = float64(c.Offset)
		scores[i].Y = c.Score
		spreads[i].X = float64(c.Offset)
		spreads[i].Y = float64(c.TmRegion)
	}

	scoreLine, err := plotter.NewLine(scores)
	if err != nil {
		return nil, err
	}
	scoreLine.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	scoreLine.LineStyle.Width = vg.Points(2)

	spreadLine, err := plotter.NewLine(spreads)
	if err != nil {
		return nil, err
	}
	spreadLine.LineStyle.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	spreadLine.LineStyle.Width = vg.Points(1)
	spreadLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(scoreLine, spreadLine)
	p.Legend.Add("Composite score", scoreLine)
	p.Legend.Add("Tm spread", spreadLine)
	p.Legend.Top = true

	return p, nil
}
