package erfcompare

import (
	"math"
	"testing"

	theorylab "github.com/Jung-woojin/manim-theory-lab"
	"github.com/Jung-woojin/manim-theory-lab/receptive"
)

func TestHeatColor(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"min is black", 0.2, 0},
		{"max is white", 0.6, 1},
		{"midpoint is gray", 0.4, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := HeatColor(tt.v, 0.2, 0.6)
			if math.Abs(c.R-tt.want) > 1e-6 || c.R != c.G || c.G != c.B {
				t.Errorf("HeatColor(%g) = %+v, want gray %g", tt.v, c, tt.want)
			}
			if c.A != 1 {
				t.Errorf("alpha = %g, want 1", c.A)
			}
		})
	}
}

func TestHeatColorConstantMatrix(t *testing.T) {
	c := HeatColor(0.5, 0.5, 0.5)
	if c != theorylab.ColorBlack {
		t.Errorf("HeatColor on a flat range = %+v, want black", c)
	}
}

func testHeatmap(t *testing.T, n, k int) (*theorylab.Node, *receptive.WeightMatrix) {
	t.Helper()
	font, err := theorylab.DefaultFont(18)
	if err != nil {
		t.Fatal(err)
	}
	w := receptive.Compute(n, k)
	hm := Heatmap(w, "ERF", HeatmapStyle{
		Cell: 8, Gap: 0.5, TitleBuff: 7, BoxBuff: 2, CellStroke: 0.2, BoxStroke: 3, TitleFont: font,
	})
	return hm, w
}

func TestHeatmapCells(t *testing.T) {
	hm, w := testHeatmap(t, 20, 3)
	cells := hm.Find("cells")
	if cells == nil {
		t.Fatal("no cells group")
	}
	if got := cells.NumChildren(); got != 400 {
		t.Fatalf("cells = %d, want 400", got)
	}

	row, col := w.Center()
	center := cells.Children()[row*20+col]
	if center.Fill.R < 0.999 {
		t.Errorf("center fill = %+v, want white", center.Fill)
	}
	corner := cells.Children()[0]
	if corner.Fill.R > 1e-6 {
		t.Errorf("corner fill = %+v, want black", corner.Fill)
	}
	if corner.Stroke != theorylab.ColorDimGray {
		t.Errorf("cell stroke = %+v, want dim gray", corner.Stroke)
	}
}

func TestHeatmapLayout(t *testing.T) {
	hm, _ := testHeatmap(t, 10, 5)
	title := hm.Find("title").Bounds()
	cells := hm.Find("cells").Bounds()
	box := hm.Find("box").Bounds()

	if title.Bottom() > cells.Y {
		t.Errorf("title bottom %g overlaps cells top %g", title.Bottom(), cells.Y)
	}
	if math.Abs(cells.Y-title.Bottom()-7) > 1e-9 {
		t.Errorf("title gap = %g, want 7", cells.Y-title.Bottom())
	}
	want := cells.Expand(2)
	if math.Abs(box.X-want.X) > 1e-9 || math.Abs(box.Width-want.Width) > 1e-9 ||
		math.Abs(box.Y-want.Y) > 1e-9 || math.Abs(box.Height-want.Height) > 1e-9 {
		t.Errorf("box = %+v, want %+v", box, want)
	}
	// 10 cells of 8 with 9 gaps of 0.5.
	if math.Abs(cells.Width-84.5) > 1e-9 {
		t.Errorf("cells width = %g, want 84.5", cells.Width)
	}
}

func TestHeatmapFollowsMoveTo(t *testing.T) {
	hm, _ := testHeatmap(t, 6, 3)
	hm.MoveTo(theorylab.Vec2{X: 500, Y: 300})
	c := hm.Center()
	if math.Abs(c.X-500) > 1e-9 || math.Abs(c.Y-300) > 1e-9 {
		t.Errorf("center = %+v, want (500, 300)", c)
	}
	cells := hm.Find("cells").Bounds()
	box := hm.Find("box").Bounds()
	if !box.Contains(cells.X, cells.Y) || !box.Contains(cells.Right(), cells.Bottom()) {
		t.Errorf("box %+v no longer surrounds cells %+v", box, cells)
	}
}
