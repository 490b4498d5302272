package theorylab

// Canvas is a 2D drawing surface. Coordinates are in pixels with the origin
// at the top-left; colors are straight alpha with the node's effective alpha
// already folded into A.
type Canvas interface {
	Clear(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	StrokePolyline(points []Vec2, width float64, c Color)
	// DrawText draws s with its line box's top-left corner at (x, y).
	DrawText(s string, f Font, x, y float64, c Color)
}

// draw renders n and its descendants. origin is the parent's world position
// and alpha the parent's accumulated alpha.
func (s *Scene) draw(c Canvas, n *Node, origin Vec2, alpha float64, stats *debugStats) {
	if !n.Visible {
		return
	}
	stats.nodes++
	pos := origin.Add(Vec2{n.X, n.Y})
	alpha *= n.Alpha
	if alpha <= 0 {
		return
	}

	switch n.Type {
	case NodeTypeRect:
		drawRect(c, n, pos, alpha, stats)
	case NodeTypeText:
		if n.Font != nil && n.Content != "" && n.TextColor.A > 0 {
			col := n.TextColor
			col.A *= alpha * n.Reveal
			if col.A > 0 {
				c.DrawText(n.Content, n.Font, pos.X, pos.Y, col)
				stats.drawCalls++
			}
		}
	}

	for _, child := range n.children {
		s.draw(c, child, pos, alpha, stats)
	}
}

func drawRect(c Canvas, n *Node, pos Vec2, alpha float64, stats *debugStats) {
	r := Rect{pos.X, pos.Y, n.Width, n.Height}
	if n.Reveal <= 0 {
		return
	}
	if n.Fill.A > 0 {
		fill := n.Fill
		fill.A *= alpha * n.Reveal
		c.FillRect(r, fill)
		stats.drawCalls++
	}
	if n.Stroke.A > 0 && n.StrokeWidth > 0 {
		stroke := n.Stroke
		stroke.A *= alpha
		if n.Reveal >= 1 {
			c.StrokeRect(r, n.StrokeWidth, stroke)
		} else {
			c.StrokePolyline(NewPolyline(r.Outline()).Prefix(n.Reveal), n.StrokeWidth, stroke)
		}
		stats.drawCalls++
	}
}
