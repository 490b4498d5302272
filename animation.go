package theorylab

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultRunTime is the duration, in seconds, of an animation that was not
// given one.
const DefaultRunTime float32 = 1

// Animation drives node properties over a fixed duration. Animations are
// values held by a Scene's timeline; a Player calls Begin when their step
// starts, Update every frame and Finish once the step's time is up.
type Animation interface {
	Duration() float32
	SetDuration(d float32)
	// Begin captures the start state. It may be called again after a
	// Player resets the scene.
	Begin()
	// Update advances the animation by dt seconds.
	Update(dt float32)
	// Finish snaps to the end state.
	Finish()
	Done() bool
}

// progress is a 0→1 gween tween shared by the concrete animations.
type progress struct {
	duration float32
	fn       ease.TweenFunc
	tween    *gween.Tween
	done     bool
}

func newProgress(fn ease.TweenFunc) progress {
	return progress{duration: DefaultRunTime, fn: fn}
}

func (p *progress) Duration() float32     { return p.duration }
func (p *progress) SetDuration(d float32) { p.duration = d }
func (p *progress) Done() bool            { return p.done }

// restart recreates the tween. Zero-length animations start finished.
func (p *progress) restart() {
	p.done = p.duration <= 0
	p.tween = gween.New(0, 1, p.duration, p.fn)
}

// advance steps the tween and returns the eased fraction.
func (p *progress) advance(dt float32) float64 {
	if p.tween == nil {
		p.restart()
	}
	if p.done {
		return 1
	}
	v, finished := p.tween.Update(dt)
	p.done = finished
	if finished {
		return 1
	}
	return float64(v)
}

// --- Fade ---

// Fade animates a node's alpha. FadeIn makes the node visible first; FadeOut
// hides it at the end and restores the alpha it started from.
type Fade struct {
	progress
	node    *Node
	in      bool
	from    float64
	to      float64
	restore float64
}

// FadeIn fades node from transparent to opaque.
func FadeIn(node *Node) *Fade {
	return &Fade{progress: newProgress(ease.InOutCubic), node: node, in: true}
}

// FadeOut fades node to transparent and hides it.
func FadeOut(node *Node) *Fade {
	return &Fade{progress: newProgress(ease.InOutCubic), node: node}
}

// WithEase replaces the easing function.
func (f *Fade) WithEase(fn ease.TweenFunc) *Fade {
	f.fn = fn
	return f
}

func (f *Fade) Begin() {
	f.restart()
	f.restore = f.node.Alpha
	if f.in {
		f.node.Visible = true
		f.from, f.to = 0, 1
	} else {
		f.from, f.to = f.node.Alpha, 0
	}
	f.node.Alpha = f.from
}

func (f *Fade) Update(dt float32) {
	t := f.advance(dt)
	f.node.Alpha = f.from + (f.to-f.from)*t
}

func (f *Fade) Finish() {
	f.done = true
	f.node.Alpha = f.to
	if !f.in {
		f.node.Visible = false
		f.node.Alpha = f.restore
	}
}

// --- Create ---

// Create draws a node progressively: outlines are traced from the top-left
// corner around the perimeter while fills and text fade in with them.
type Create struct {
	progress
	node *Node
}

// NewCreate returns a Create animation for node and all of its descendants.
func NewCreate(node *Node) *Create {
	return &Create{progress: newProgress(ease.InOutCubic), node: node}
}

// WithEase replaces the easing function.
func (c *Create) WithEase(fn ease.TweenFunc) *Create {
	c.fn = fn
	return c
}

func (c *Create) Begin() {
	c.restart()
	c.node.Visible = true
	c.setReveal(0)
}

func (c *Create) Update(dt float32) {
	c.setReveal(c.advance(dt))
}

func (c *Create) Finish() {
	c.done = true
	c.setReveal(1)
}

func (c *Create) setReveal(v float64) {
	c.node.Walk(func(n *Node) bool {
		n.Reveal = v
		return true
	})
}

// --- MoveAlongPath ---

// MoveAlongPath moves a node's center along a polyline. It defaults to linear
// easing, which with arc-length parameterization means constant speed.
type MoveAlongPath struct {
	progress
	node *Node
	path *Polyline
}

// NewMoveAlongPath returns an animation moving node along path.
func NewMoveAlongPath(node *Node, path *Polyline) *MoveAlongPath {
	return &MoveAlongPath{progress: newProgress(ease.Linear), node: node, path: path}
}

// WithEase replaces the easing function.
func (m *MoveAlongPath) WithEase(fn ease.TweenFunc) *MoveAlongPath {
	m.fn = fn
	return m
}

func (m *MoveAlongPath) Begin() {
	m.restart()
	m.node.MoveTo(m.path.At(0))
}

func (m *MoveAlongPath) Update(dt float32) {
	m.node.MoveTo(m.path.At(m.advance(dt)))
}

func (m *MoveAlongPath) Finish() {
	m.done = true
	m.node.MoveTo(m.path.At(1))
}
