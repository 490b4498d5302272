package theorylab

// WorldPosition returns the node's top-left corner in scene coordinates.
func (n *Node) WorldPosition() Vec2 {
	var p Vec2
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// WorldAlpha returns the node's alpha multiplied by every ancestor's.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for c := n; c != nil; c = c.Parent {
		a *= c.Alpha
	}
	return a
}

// Shown reports whether the node and all its ancestors are visible.
func (n *Node) Shown() bool {
	for c := n; c != nil; c = c.Parent {
		if !c.Visible {
			return false
		}
	}
	return true
}

// Bounds returns the node's world-space extent. A group's bounds are the
// union of its children's, hidden ones included; an empty group is a
// zero-sized rect at its position. Stroke width is not included.
func (n *Node) Bounds() Rect {
	if n.Type != NodeTypeGroup {
		p := n.WorldPosition()
		return Rect{p.X, p.Y, n.Width, n.Height}
	}
	if len(n.children) == 0 {
		p := n.WorldPosition()
		return Rect{X: p.X, Y: p.Y}
	}
	b := n.children[0].Bounds()
	for _, c := range n.children[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}

// Center returns the midpoint of the node's bounds.
func (n *Node) Center() Vec2 {
	return n.Bounds().Center()
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Shift moves the node by (dx, dy).
func (n *Node) Shift(dx, dy float64) {
	n.X += dx
	n.Y += dy
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}
