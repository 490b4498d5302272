package theorylab

// MoveTo shifts the node so the center of its bounds lands on c.
func (n *Node) MoveTo(c Vec2) {
	d := c.Sub(n.Center())
	n.Shift(d.X, d.Y)
}

// NextTo places the node beside target on the given side with buff of space
// between them, centered along the other axis.
func (n *Node) NextTo(target Rect, dir Direction, buff float64) {
	b := n.Bounds()
	tc := target.Center()
	var c Vec2
	switch dir {
	case Up:
		c = Vec2{tc.X, target.Y - buff - b.Height/2}
	case Down:
		c = Vec2{tc.X, target.Bottom() + buff + b.Height/2}
	case Left:
		c = Vec2{target.X - buff - b.Width/2, tc.Y}
	case Right:
		c = Vec2{target.Right() + buff + b.Width/2, tc.Y}
	}
	n.MoveTo(c)
}

// ArrangeGrid lays the children out row-major in a rows×cols grid with buff
// between cells, starting at the group's own position. Every cell is sized to
// the largest child and each child is centered in its cell. Children beyond
// rows*cols are left where they are.
func (n *Node) ArrangeGrid(rows, cols int, buff float64) {
	if rows <= 0 || cols <= 0 || len(n.children) == 0 {
		return
	}
	var cw, ch float64
	for _, c := range n.children {
		b := c.Bounds()
		cw = max(cw, b.Width)
		ch = max(ch, b.Height)
	}
	origin := n.WorldPosition()
	for i, c := range n.children {
		if i >= rows*cols {
			break
		}
		row, col := i/cols, i%cols
		c.MoveTo(Vec2{
			X: origin.X + float64(col)*(cw+buff) + cw/2,
			Y: origin.Y + float64(row)*(ch+buff) + ch/2,
		})
	}
}

// ArrangeColumn stacks the children top to bottom with buff between them,
// horizontally centered on the widest child, starting at the group's own
// position.
func (n *Node) ArrangeColumn(buff float64) {
	if len(n.children) == 0 {
		return
	}
	var w float64
	for _, c := range n.children {
		w = max(w, c.Bounds().Width)
	}
	origin := n.WorldPosition()
	y := origin.Y
	for _, c := range n.children {
		b := c.Bounds()
		c.MoveTo(Vec2{origin.X + w/2, y + b.Height/2})
		y += b.Height + buff
	}
}
