package receptive

import "gonum.org/v1/gonum/floats"

// Point is a window-center position in screen space (y grows downward).
type Point struct {
	X, Y float64
}

// Bounds are the edges of the padded region a window sweeps across.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Padding returns the border, in cells, that lets a k×k window center on
// every cell of the original grid. Even k truncates.
func Padding(k int) int {
	return k / 2
}

// Linspace returns n evenly spaced values from lo to hi inclusive. A single
// value is lo; n <= 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// ScanPath returns the ordered window-center positions for a raster sweep of
// a window of the given side length over the padded region b. Centers are
// inset by window/2 from every edge and spread evenly over cols columns and
// rows rows. Each row runs left to right; between rows one connector point
// at (first column, next row) joins the sweep into a single polyline, so the
// path holds rows*cols + rows-1 points.
func ScanPath(b Bounds, window float64, rows, cols int) []Point {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	half := window / 2
	xs := Linspace(b.Left+half, b.Right-half, cols)
	ys := Linspace(b.Top+half, b.Bottom-half, rows)

	path := make([]Point, 0, rows*cols+rows-1)
	for r, y := range ys {
		for _, x := range xs {
			path = append(path, Point{X: x, Y: y})
		}
		if r < len(ys)-1 {
			path = append(path, Point{X: xs[0], Y: ys[r+1]})
		}
	}
	return path
}
