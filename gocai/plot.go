package main

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gocai/gocai/cai"
)

// plotProfile draws CAI of every window against the window middle
// position. Windows without scored codons are left out. The image
// format is chosen by the file extension.
func plotProfile(windows []cai.Window, title, fn string) error {
	pts := make(plotter.XYs, 0, len(windows))
	for _, w := range windows {
		if math.IsNaN(w.CAI) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(w.Start+w.End) / 2, Y: w.CAI})
	}
	if len(pts) == 0 {
		return errors.New("no windows with scored codons")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "position (nt)"
	p.Y.Label.Text = "CAI"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p, "CAI", pts); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, fn)
}
