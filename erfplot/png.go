// Package erfplot writes static reports of receptive field weights: PNG
// heatmaps and radial profiles with gonum/plot, and an interactive HTML page
// with go-echarts.
package erfplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Jung-woojin/manim-theory-lab/receptive"
)

// ErrNoWeights is returned when a report is requested for no matrices.
var ErrNoWeights = errors.New("erfplot: no weight matrices")

// grayLevels is the number of steps in the heatmap palette.
const grayLevels = 64

// grayscale is a black→white plot palette.
type grayscale int

func (g grayscale) Colors() []color.Color {
	n := int(g)
	out := make([]color.Color, n)
	for i := range out {
		v := uint8(0)
		if n > 1 {
			v = uint8(255 * i / (n - 1))
		}
		out[i] = color.Gray{Y: v}
	}
	return out
}

// weightGrid adapts a WeightMatrix to plotter.GridXYZ. Axes are offsets from
// the center cell; rows are flipped so row 0 is drawn at the top.
type weightGrid struct {
	w *receptive.WeightMatrix
}

func (g weightGrid) Dims() (c, r int) { return g.w.Size(), g.w.Size() }

func (g weightGrid) Z(c, r int) float64 {
	n := g.w.Size()
	return g.w.At(n-1-r, c)
}

func (g weightGrid) X(c int) float64 {
	_, cc := g.w.Center()
	return float64(c - cc)
}

func (g weightGrid) Y(r int) float64 {
	n := g.w.Size()
	cr, _ := g.w.Center()
	return float64(cr - (n - 1 - r))
}

// SaveHeatmapPNG renders w as a gray heatmap.
func SaveHeatmapPNG(w *receptive.WeightMatrix, title, path string) error {
	if w == nil {
		return ErrNoWeights
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column offset"
	p.Y.Label.Text = "Row offset"

	h := plotter.NewHeatMap(weightGrid{w}, grayscale(grayLevels))
	p.Add(h)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("erfplot: save heatmap: %w", err)
	}
	return nil
}

// SaveProfilePNG plots each matrix's mean weight against distance from the
// center, one line per kernel.
func SaveProfilePNG(path string, mats ...*receptive.WeightMatrix) error {
	if len(mats) == 0 {
		return ErrNoWeights
	}
	p := plot.New()
	p.Title.Text = "Receptive field radial profile"
	p.X.Label.Text = "Distance from center (cells)"
	p.Y.Label.Text = "Mean weight"

	for i, w := range mats {
		prof := w.RadialProfile()
		pts := make(plotter.XYs, len(prof))
		for j, s := range prof {
			pts[j] = plotter.XY{X: s.Radius, Y: s.Weight}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("erfplot: profile K=%d: %w", w.Kernel(), err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("K=%d (σ=%.2f, r50=%.2f)", w.Kernel(), w.Sigma(), w.RadiusOfMass(0.5)), line)
	}
	p.Legend.Top = true
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("erfplot: save profile: %w", err)
	}
	return nil
}
