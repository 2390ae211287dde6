package forecast

import "github.com/aouyang1/go-salesforecaster/interp"

// Options configures the forecast model
type Options struct {
	Model Model `json:"model"`

	// SplineBoundary is only used by the CubicSpline model
	SplineBoundary interp.Boundary `json:"spline_boundary"`
}

// NewDefaultOptions returns a cubic spline with not-a-knot ends
func NewDefaultOptions() *Options {
	return &Options{
		Model:          CubicSpline,
		SplineBoundary: interp.NotAKnot,
	}
}
