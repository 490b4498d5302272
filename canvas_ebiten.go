package theorylab

import (
	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws onto an Ebitengine image, normally the screen passed to
// Draw.
type EbitenCanvas struct {
	Target *ebiten.Image
}

func (c *EbitenCanvas) Clear(col Color) {
	c.Target.Fill(col.NRGBA())
}

func (c *EbitenCanvas) FillRect(r Rect, col Color) {
	vector.DrawFilledRect(c.Target,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		col.NRGBA(), true)
}

func (c *EbitenCanvas) StrokeRect(r Rect, width float64, col Color) {
	vector.StrokeRect(c.Target,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		float32(width), col.NRGBA(), true)
}

func (c *EbitenCanvas) StrokePolyline(points []Vec2, width float64, col Color) {
	nc := col.NRGBA()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(c.Target,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(width), nc, true)
	}
}

func (c *EbitenCanvas) DrawText(s string, f Font, x, y float64, col Color) {
	tf, ok := f.(*TTFFont)
	if !ok {
		return
	}
	face, err := tf.EbitenFace()
	if err != nil {
		Logger().Warn("text face unavailable", "err", err)
		return
	}
	op := &etext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.NRGBA())
	etext.Draw(c.Target, s, face, op)
}
