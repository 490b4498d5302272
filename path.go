package theorylab

import (
	"math"
	"sort"
)

// Polyline is a piecewise-linear path parameterized by arc length: equal
// steps of progress cover equal distances, so a linear tween along it moves
// at constant speed. Zero-length segments are allowed and take no time.
type Polyline struct {
	points []Vec2
	cum    []float64 // cumulative length at each point
}

// NewPolyline builds a path through points. The slice is copied.
func NewPolyline(points []Vec2) *Polyline {
	p := &Polyline{
		points: append([]Vec2(nil), points...),
		cum:    make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		d := points[i].Sub(points[i-1])
		p.cum[i] = p.cum[i-1] + math.Hypot(d.X, d.Y)
	}
	return p
}

// Points returns the path's corner points. The returned slice MUST NOT be
// mutated.
func (p *Polyline) Points() []Vec2 {
	return p.points
}

// Length returns the total arc length.
func (p *Polyline) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// At returns the point at fraction t of the arc length. t is clamped to
// [0, 1]; an empty path yields the zero vector.
func (p *Polyline) At(t float64) Vec2 {
	if len(p.points) == 0 {
		return Vec2{}
	}
	total := p.Length()
	if total == 0 {
		return p.points[0]
	}
	target := clamp01(t) * total
	i := sort.SearchFloat64s(p.cum, target)
	if i == 0 {
		return p.points[0]
	}
	if i >= len(p.points) {
		return p.points[len(p.points)-1]
	}
	seg := p.cum[i] - p.cum[i-1]
	if seg == 0 {
		return p.points[i]
	}
	f := (target - p.cum[i-1]) / seg
	a, b := p.points[i-1], p.points[i]
	return a.Add(b.Sub(a).Scale(f))
}

// Prefix returns the corner points covering the first fraction t of the arc
// length, ending at At(t).
func (p *Polyline) Prefix(t float64) []Vec2 {
	if len(p.points) == 0 {
		return nil
	}
	t = clamp01(t)
	if t >= 1 {
		return append([]Vec2(nil), p.points...)
	}
	target := t * p.Length()
	out := []Vec2{p.points[0]}
	for i := 1; i < len(p.points) && p.cum[i] < target; i++ {
		out = append(out, p.points[i])
	}
	return append(out, p.At(t))
}
