package theorylab

import (
	"image"

	"github.com/gogpu/gg"
)

// GGCanvas draws into a software gogpu/gg context. It needs no GPU or
// window, so exports and tests render through it.
type GGCanvas struct {
	dc  *gg.Context
	err error
}

// NewGGCanvas creates a width×height canvas.
func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{dc: gg.NewContext(width, height)}
}

// Context returns the underlying drawing context.
func (c *GGCanvas) Context() *gg.Context { return c.dc }

// Image returns the rendered pixels.
func (c *GGCanvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (c *GGCanvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Err returns the first fill or stroke error since the canvas was created.
func (c *GGCanvas) Err() error { return c.err }

// Close releases the context.
func (c *GGCanvas) Close() error { return c.dc.Close() }

func (c *GGCanvas) Clear(col Color) {
	c.dc.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

func (c *GGCanvas) FillRect(r Rect, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.keep(c.dc.Fill())
}

func (c *GGCanvas) StrokeRect(r Rect, width float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.keep(c.dc.Stroke())
}

func (c *GGCanvas) StrokePolyline(points []Vec2, width float64, col Color) {
	if len(points) < 2 {
		return
	}
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.keep(c.dc.Stroke())
}

func (c *GGCanvas) DrawText(s string, f Font, x, y float64, col Color) {
	tf, ok := f.(*TTFFont)
	if !ok {
		return
	}
	c.dc.SetFont(tf.Face())
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawString(s, x, y+tf.Ascent())
}

func (c *GGCanvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}
