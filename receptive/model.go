// Package receptive models how far a convolution's influence spreads over an
// input grid, and the raster path a sliding window takes across that grid.
//
// The receptive field is a single closed-form Gaussian whose spread scales
// with the kernel size (σ = K/3). It is a visual approximation of an
// effective receptive field, not a simulation of stacked convolutions.
package receptive

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// WeightMatrix is a normalized N×N Gaussian approximation of the effective
// receptive field of a K×K convolution. Entries are non-negative and sum to 1.
// A WeightMatrix is immutable once computed.
type WeightMatrix struct {
	n, k  int
	sigma float64
	data  *mat.Dense
}

// Sigma returns the Gaussian spread used for kernel size k.
func Sigma(k int) float64 {
	return float64(k) / 3
}

// Compute returns the receptive field weights over an n×n grid for kernel
// size k. The Gaussian is centered on cell (n/2, n/2), so the axes run from
// -(n/2) to n-1-(n/2). Behavior for n <= 0 or k <= 0 is undefined.
func Compute(n, k int) *WeightMatrix {
	sigma := Sigma(k)
	den := 2 * sigma * sigma
	c := n / 2

	data := mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		y := float64(row - c)
		for col := 0; col < n; col++ {
			x := float64(col - c)
			data.Set(row, col, math.Exp(-(x*x+y*y)/den))
		}
	}
	// The center cell is exp(0) = 1, so the sum is never zero.
	data.Scale(1/mat.Sum(data), data)

	return &WeightMatrix{n: n, k: k, sigma: sigma, data: data}
}

// Size returns the grid dimension N.
func (w *WeightMatrix) Size() int { return w.n }

// Kernel returns the kernel size K the weights were computed for.
func (w *WeightMatrix) Kernel() int { return w.k }

// Sigma returns the Gaussian spread.
func (w *WeightMatrix) Sigma() float64 { return w.sigma }

// At returns the weight of the cell at (row, col).
func (w *WeightMatrix) At(row, col int) float64 {
	return w.data.At(row, col)
}

// Sum returns the total weight, which is 1 up to rounding.
func (w *WeightMatrix) Sum() float64 { return mat.Sum(w.data) }

// Max returns the largest weight (the center cell).
func (w *WeightMatrix) Max() float64 { return mat.Max(w.data) }

// Min returns the smallest weight.
func (w *WeightMatrix) Min() float64 { return mat.Min(w.data) }

// Center returns the row and column of the Gaussian's peak.
func (w *WeightMatrix) Center() (row, col int) {
	return w.n / 2, w.n / 2
}

// PeakToEdgeRatio returns Max/Min. A flatter field has a lower ratio. When
// the outermost weights underflow to zero the ratio is +Inf.
func (w *WeightMatrix) PeakToEdgeRatio() float64 {
	lo := w.Min()
	if lo == 0 {
		return math.Inf(1)
	}
	return w.Max() / lo
}

// Dense returns a copy of the weights as a gonum matrix.
func (w *WeightMatrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(w.data)
}

// Values returns a row-major copy of the weights.
func (w *WeightMatrix) Values() []float64 {
	out := make([]float64, 0, w.n*w.n)
	for row := 0; row < w.n; row++ {
		out = append(out, w.data.RawRowView(row)...)
	}
	return out
}

// Radius returns the distance, in cells, from the center to (row, col).
func (w *WeightMatrix) Radius(row, col int) float64 {
	c := w.n / 2
	dx, dy := col-c, row-c
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// RadialSample is the weight shared by every cell at one distance from the
// center.
type RadialSample struct {
	Radius float64
	Weight float64
	Cells  int
}

// RadialProfile returns one sample per distinct center distance, nearest
// first.
func (w *WeightMatrix) RadialProfile() []RadialSample {
	byDist := make(map[int]*RadialSample)
	c := w.n / 2
	for row := 0; row < w.n; row++ {
		for col := 0; col < w.n; col++ {
			dx, dy := col-c, row-c
			d2 := dx*dx + dy*dy
			s, ok := byDist[d2]
			if !ok {
				s = &RadialSample{Radius: math.Sqrt(float64(d2)), Weight: w.data.At(row, col)}
				byDist[d2] = s
			}
			s.Cells++
		}
	}

	out := make([]RadialSample, 0, len(byDist))
	for _, s := range byDist {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b RadialSample) int {
		return cmp.Compare(a.Radius, b.Radius)
	})
	return out
}

// RadiusOfMass returns the smallest center distance whose disc holds at
// least frac of the total weight.
func (w *WeightMatrix) RadiusOfMass(frac float64) float64 {
	profile := w.RadialProfile()
	if len(profile) == 0 {
		return 0
	}
	var acc float64
	for _, s := range profile {
		acc += s.Weight * float64(s.Cells)
		if acc >= frac-1e-12 {
			return s.Radius
		}
	}
	return profile[len(profile)-1].Radius
}
