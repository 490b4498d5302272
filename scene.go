package theorylab

import "time"

// Scene is an explicit description of an animation: a node tree rooted at
// Root and a timeline of steps. Building a scene never plays it; a Player
// does that.
type Scene struct {
	root  *Node
	steps []*Step
	debug bool

	// ClearColor fills the frame before nodes are drawn.
	ClearColor Color

	// ScreenshotDir is where windowed screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates an empty scene with a black background.
func NewScene() *Scene {
	return &Scene{
		root:          NewGroup("root"),
		ClearColor:    ColorBlack,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node {
	return s.root
}

// SetDebugMode enables or disables per-frame render stats, logged at debug
// level through the package logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Render clears c and draws every shown node in tree order.
func (s *Scene) Render(c Canvas) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	c.Clear(s.ClearColor)
	s.draw(c, s.root, Vec2{}, 1, &stats)

	if s.debug {
		stats.renderTime = time.Since(t0)
		s.debugLog(stats)
	}
}
