package theorylab

// nodeIDCounter is a plain counter (no atomic: scenes are built and played on
// one goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene element. A single flat struct is used for
// all node types; Type selects which fields matter.
//
// Positions are translation-only: a node's world position is the sum of its
// own and its ancestors' X/Y, so a shift in local space is the same shift in
// world space.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Top-left corner relative to the parent.
	X, Y float64

	// Alpha multiplies into every descendant.
	Alpha   float64
	Visible bool

	// Size of a rect, or the measured extent of a text node.
	Width, Height float64

	// Rect fields (NodeTypeRect)
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	// Reveal is the drawn fraction of the node: the outline is traced up to
	// Reveal of its perimeter and fills and text fade with it.
	Reveal float64

	// Text fields (NodeTypeText)
	Content   string
	Font      Font
	TextColor Color

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Visible = true
	n.Reveal = 1
}

// NewGroup creates a group node holding the given children in order.
func NewGroup(name string, children ...*Node) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// NewRect creates an unfilled, unstroked rectangle of the given size.
func NewRect(name string, width, height float64) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewSquare creates a square with the given side length.
func NewSquare(name string, side float64) *Node {
	return NewRect(name, side, side)
}

// NewSurroundingRect creates a stroked rectangle enclosing target with buff
// of space on every side. The rect is placed in world space, so it belongs
// under a parent at the origin (typically the scene root).
func NewSurroundingRect(name string, target Rect, buff float64, stroke Color, width float64) *Node {
	r := target.Expand(buff)
	n := NewRect(name, r.Width, r.Height)
	n.X, n.Y = r.X, r.Y
	n.Stroke = stroke
	n.StrokeWidth = width
	return n
}

// NewText creates a text node and measures it with font. A nil font yields a
// zero-sized node that draws nothing.
func NewText(name, content string, font Font, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Font: font, TextColor: c}
	nodeDefaults(n)
	n.SetText(content)
	return n
}

// SetText replaces a text node's content and re-measures it.
func (n *Node) SetText(content string) {
	n.Content = content
	if n.Font == nil {
		n.Width, n.Height = 0, 0
		return
	}
	n.Width, _ = n.Font.MeasureString(content)
	n.Height = n.Font.LineHeight()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("theorylab: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("theorylab: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("theorylab: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for n and every descendant in draw order. Returning false
// from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node named name in n's subtree, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
