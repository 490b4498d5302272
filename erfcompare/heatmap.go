package erfcompare

import (
	"fmt"

	theorylab "github.com/Jung-woojin/manim-theory-lab"
	"github.com/Jung-woojin/manim-theory-lab/receptive"
)

// heatEpsilon keeps a constant matrix from dividing by zero.
const heatEpsilon = 1e-9

// HeatColor maps v onto black→white after min–max normalization over
// [lo, hi].
func HeatColor(v, lo, hi float64) theorylab.Color {
	t := (v - lo) / (hi - lo + heatEpsilon)
	return theorylab.ColorBlack.Lerp(theorylab.ColorWhite, t)
}

// HeatmapStyle sizes a heatmap in pixels.
type HeatmapStyle struct {
	Cell       float64
	Gap        float64
	TitleBuff  float64
	BoxBuff    float64
	CellStroke float64
	BoxStroke  float64
	TitleFont  theorylab.Font
}

// Heatmap builds a node showing w as an N×N grid of gray squares under a
// title, boxed in white. The group is laid out at the origin; move it into
// place with MoveTo. Children are named "title", "cells" and "box".
func Heatmap(w *receptive.WeightMatrix, title string, style HeatmapStyle) *theorylab.Node {
	n := w.Size()
	lo, hi := w.Min(), w.Max()

	cells := theorylab.NewGroup("cells")
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sq := theorylab.NewSquare(fmt.Sprintf("cell_%d_%d", row, col), style.Cell)
			sq.Fill = HeatColor(w.At(row, col), lo, hi)
			sq.Stroke = theorylab.ColorDimGray
			sq.StrokeWidth = style.CellStroke
			cells.AddChild(sq)
		}
	}
	cells.ArrangeGrid(n, n, style.Gap)

	label := theorylab.NewText("title", title, style.TitleFont, theorylab.ColorWhite)
	group := theorylab.NewGroup("heatmap", label, cells)
	group.ArrangeColumn(style.TitleBuff)

	box := theorylab.NewSurroundingRect("box", cells.Bounds(), style.BoxBuff, theorylab.ColorWhite, style.BoxStroke)
	group.AddChild(box)
	return group
}
