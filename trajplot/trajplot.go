//Package trajplot draws quick-look plots for preprocessed trajectories.
package trajplot

import (
	"fmt"

	goxyz "github.com/rvallejos/goxyz"
	"github.com/rvallejos/goxyz/xyz"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//RMSDs plots the RMSD of every frame of t against the first frame, as a
//line over the frame index, and saves the plot to plotname. The image
//format is taken from the extension of plotname (png, pdf, svg, ...).
//Since every frame is already centered on its centroid, the curve shows
//internal motion free of overall translation.
func RMSDs(t *xyz.Trajectory, title, plotname string) error {
	if t == nil || t.Frames() == 0 {
		return fmt.Errorf("trajplot: nothing to plot")
	}
	ref := t.Frame(0)
	pts := make(plotter.XYs, t.Frames())
	for i := 0; i < t.Frames(); i++ {
		r, err := goxyz.RMSD(t.Frame(i), ref)
		if err != nil {
			return err
		}
		pts[i].X = float64(i)
		pts[i].Y = r
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "RMSD"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}
