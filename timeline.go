package theorylab

import "math"

// Step is one entry in a scene's timeline: nodes to show instantly, then a
// set of animations played together. A step with no animations and a
// positive RunTime is a pause.
type Step struct {
	Show       []*Node
	Animations []Animation
	// RunTime overrides every animation's duration when positive.
	RunTime float32
}

// Duration returns the step's length in seconds.
func (st *Step) Duration() float64 {
	if st.RunTime > 0 {
		return float64(st.RunTime)
	}
	var d float32
	for _, a := range st.Animations {
		d = max(d, a.Duration())
	}
	return float64(d)
}

// Stage attaches nodes to the root hidden, ready for a later Add or FadeIn.
func (s *Scene) Stage(nodes ...*Node) {
	for _, n := range nodes {
		if n.Parent == nil {
			s.root.AddChild(n)
		}
		n.Visible = false
	}
}

// Add stages nodes and appends a zero-length step that shows them.
func (s *Scene) Add(nodes ...*Node) {
	s.Stage(nodes...)
	s.steps = append(s.steps, &Step{Show: nodes})
}

// Play appends a step running anims together for the longest of their
// durations.
func (s *Scene) Play(anims ...Animation) *Step {
	st := &Step{Animations: anims}
	s.steps = append(s.steps, st)
	return st
}

// PlayFor appends a step running anims together, each stretched to runTime
// seconds.
func (s *Scene) PlayFor(runTime float32, anims ...Animation) *Step {
	for _, a := range anims {
		a.SetDuration(runTime)
	}
	st := &Step{Animations: anims, RunTime: runTime}
	s.steps = append(s.steps, st)
	return st
}

// Wait appends a pause of d seconds.
func (s *Scene) Wait(d float32) {
	s.steps = append(s.steps, &Step{RunTime: d})
}

// Steps returns the timeline. The returned slice MUST NOT be mutated.
func (s *Scene) Steps() []*Step {
	return s.steps
}

// Duration returns the total timeline length in seconds.
func (s *Scene) Duration() float64 {
	var d float64
	for _, st := range s.steps {
		d += st.Duration()
	}
	return d
}

// --- Player ---

// nodeState is the animatable part of a node, captured so a Player can
// restart the timeline from the scene's built state.
type nodeState struct {
	node    *Node
	x, y    float64
	alpha   float64
	visible bool
	reveal  float64
}

// Player plays a scene's timeline. It mutates the scene's nodes; NewPlayer
// snapshots them first so Reset and Seek can replay deterministically.
type Player struct {
	scene    *Scene
	snapshot []nodeState

	step     int
	started  bool
	stepTime float64
	elapsed  float64
	done     bool
}

// NewPlayer snapshots the scene's node tree and positions the player at the
// start of the timeline.
func NewPlayer(s *Scene) *Player {
	p := &Player{scene: s}
	s.root.Walk(func(n *Node) bool {
		p.snapshot = append(p.snapshot, nodeState{
			node: n, x: n.X, y: n.Y, alpha: n.Alpha, visible: n.Visible, reveal: n.Reveal,
		})
		return true
	})
	p.done = len(s.steps) == 0
	return p
}

// Elapsed returns the timeline position in seconds.
func (p *Player) Elapsed() float64 { return p.elapsed }

// Done reports whether every step has finished.
func (p *Player) Done() bool { return p.done }

// Reset restores the snapshot and rewinds to the start.
func (p *Player) Reset() {
	for _, st := range p.snapshot {
		n := st.node
		n.X, n.Y = st.x, st.y
		n.Alpha = st.alpha
		n.Visible = st.visible
		n.Reveal = st.reveal
	}
	p.step = 0
	p.started = false
	p.stepTime = 0
	p.elapsed = 0
	p.done = len(p.scene.steps) == 0
}

// Seek replays the timeline from the start up to t seconds.
func (p *Player) Seek(t float64) {
	p.Reset()
	p.advance(t)
}

// Update advances the timeline by dt seconds, crossing as many step
// boundaries as dt covers.
func (p *Player) Update(dt float32) {
	p.advance(float64(dt))
}

// stepEpsilon absorbs float32 frame-time rounding at step boundaries.
const stepEpsilon = 1e-6

func (p *Player) advance(dt float64) {
	remaining := dt
	for !p.done {
		st := p.scene.steps[p.step]
		if !p.started {
			p.begin(st)
		}

		left := st.Duration() - p.stepTime
		adv := math.Min(remaining, left)
		if adv > 0 {
			for _, a := range st.Animations {
				a.Update(float32(adv))
			}
			p.stepTime += adv
			p.elapsed += adv
			remaining -= adv
		}

		if p.stepTime < st.Duration()-stepEpsilon {
			return
		}
		for _, a := range st.Animations {
			a.Finish()
		}
		p.step++
		p.started = false
		p.stepTime = 0
		if p.step >= len(p.scene.steps) {
			p.done = true
		}
		if remaining <= 0 && !p.done && p.scene.steps[p.step].Duration() > 0 {
			return
		}
	}
}

func (p *Player) begin(st *Step) {
	for _, n := range st.Show {
		n.Visible = true
	}
	for _, a := range st.Animations {
		a.Begin()
	}
	p.started = true
}
