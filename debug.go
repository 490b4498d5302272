package theorylab

import "time"

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	renderTime time.Duration
	nodes      int
	drawCalls  int
}

// debugLog reports render stats through the package logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame rendered",
		"nodes", stats.nodes,
		"draw_calls", stats.drawCalls,
		"render", stats.renderTime,
	)
}
