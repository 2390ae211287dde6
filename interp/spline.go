package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrTooFewPoints     = errors.New("cubic spline needs at least 2 points")
	ErrDuplicateX       = errors.New("x values must be distinct")
	ErrLenMismatch      = errors.New("x and y have different lengths")
	ErrUnknownBoundary  = errors.New("unknown spline boundary condition")
	ErrUntrainedSpline  = errors.New("spline has not been fit yet")
	ErrNonFiniteSamples = errors.New("spline samples contain NaN or Inf values")
)

// Boundary selects the end conditions of the spline
type Boundary int

const (
	// NotAKnot forces a continuous third derivative at the second and second to last knots
	NotAKnot Boundary = iota
	// Natural forces a zero second derivative at both ends
	Natural
)

func (b Boundary) String() string {
	switch b {
	case NotAKnot:
		return "not-a-knot"
	case Natural:
		return "natural"
	default:
		return fmt.Sprintf("boundary(%d)", int(b))
	}
}

// ParseBoundary converts a boundary name into a Boundary
func ParseBoundary(name string) (Boundary, error) {
	switch name {
	case "", "not-a-knot", "not_a_knot":
		return NotAKnot, nil
	case "natural":
		return Natural, nil
	default:
		return 0, fmt.Errorf("%q, %w", name, ErrUnknownBoundary)
	}
}

// CubicSpline is a piecewise cubic interpolant with continuous first and second derivatives.
// Points outside the knot range are extrapolated with the outer pieces.
type CubicSpline struct {
	boundary Boundary

	xs []float64
	ys []float64
	// second derivative at every knot
	m []float64
}

// NewCubicSpline returns an unfit spline with the given end conditions
func NewCubicSpline(boundary Boundary) (*CubicSpline, error) {
	switch boundary {
	case NotAKnot, Natural:
	default:
		return nil, fmt.Errorf("%s, %w", boundary, ErrUnknownBoundary)
	}
	return &CubicSpline{boundary: boundary}, nil
}

// Fit computes the knot second derivatives. The x values do not need to be sorted but must
// be distinct.
func (cs *CubicSpline) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("got %d x values and %d y values, %w", len(x), len(y), ErrLenMismatch)
	}
	n := len(x)
	if n < 2 {
		return fmt.Errorf("got %d points, %w", n, ErrTooFewPoints)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return ErrNonFiniteSamples
		}
	}

	ds, err := dataset.NewYearDataset(x, y)
	if err != nil {
		return err
	}
	sorted := ds.SortByYear()
	xs, ys := sorted.X, sorted.Y
	for i := 1; i < n; i++ {
		if xs[i] == xs[i-1] {
			return fmt.Errorf("x=%v repeated, %w", xs[i], ErrDuplicateX)
		}
	}

	m, err := secondDerivatives(xs, ys, cs.boundary)
	if err != nil {
		return err
	}
	cs.xs = xs
	cs.ys = ys
	cs.m = m
	return nil
}

// secondDerivatives solves the moment equations
//
//	h[i-1]*M[i-1] + 2*(h[i-1]+h[i])*M[i] + h[i]*M[i+1] = 6*(d[i] - d[i-1])
//
// for the interior knots where d is the slope of each segment, closed by the boundary rows.
func secondDerivatives(xs, ys []float64, boundary Boundary) ([]float64, error) {
	n := len(xs)
	m := make([]float64, n)

	// a line through two points has no curvature
	if n == 2 {
		return m, nil
	}

	h := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		d[i] = (ys[i+1] - ys[i]) / h[i]
	}

	// with three points both not-a-knot rows collapse into one and the spline is the
	// parabola through the points, which has a constant second derivative
	if n == 3 && boundary == NotAKnot {
		c := 2 * (d[1] - d[0]) / (h[0] + h[1])
		for i := range m {
			m[i] = c
		}
		return m, nil
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
		b.SetVec(i, 6*(d[i]-d[i-1]))
	}

	switch boundary {
	case Natural:
		a.Set(0, 0, 1)
		a.Set(n-1, n-1, 1)
	case NotAKnot:
		// third derivative continuous across x[1] and x[n-2]
		a.Set(0, 0, h[1])
		a.Set(0, 1, -(h[0] + h[1]))
		a.Set(0, 2, h[0])
		a.Set(n-1, n-3, h[n-2])
		a.Set(n-1, n-2, -(h[n-3] + h[n-2]))
		a.Set(n-1, n-1, h[n-3])
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("unable to solve spline system, %w", err)
	}
	for i := 0; i < n; i++ {
		m[i] = sol.AtVec(i)
	}
	return m, nil
}

// Knots returns a copy of the sorted knot positions
func (cs *CubicSpline) Knots() []float64 {
	k := make([]float64, len(cs.xs))
	copy(k, cs.xs)
	return k
}

// segment returns the piece used to evaluate x, clamping to the outer pieces
func (cs *CubicSpline) segment(x float64) int {
	last := len(cs.xs) - 2
	i := sort.SearchFloat64s(cs.xs, x) - 1
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

// PredictOne evaluates the spline at a single x
func (cs *CubicSpline) PredictOne(x float64) float64 {
	i := cs.segment(x)
	h := cs.xs[i+1] - cs.xs[i]
	t := x - cs.xs[i]

	c0 := cs.ys[i]
	c1 := (cs.ys[i+1]-cs.ys[i])/h - h*(2*cs.m[i]+cs.m[i+1])/6
	c2 := cs.m[i] / 2
	c3 := (cs.m[i+1] - cs.m[i]) / (6 * h)
	return c0 + t*(c1+t*(c2+t*c3))
}

// Predict evaluates the spline at every x
func (cs *CubicSpline) Predict(x []float64) ([]float64, error) {
	if len(cs.xs) == 0 {
		return nil, ErrUntrainedSpline
	}
	res := make([]float64, len(x))
	for i, xPnt := range x {
		res[i] = cs.PredictOne(xPnt)
	}
	return res, nil
}

// MarshalText encodes the boundary by name
func (b Boundary) MarshalText() ([]byte, error) {
	switch b {
	case NotAKnot, Natural:
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("%s, %w", b, ErrUnknownBoundary)
	}
}

// UnmarshalText decodes a boundary name
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
