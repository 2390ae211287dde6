package linearmodel

import (
	"fmt"
	"math"

	mat_ "github.com/aouyang1/go-salesforecaster/mat"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
)

// PolynomialOptions configures a single variable polynomial least squares fit
type PolynomialOptions struct {
	Degree int
}

// Validate runs basic validation on polynomial options
func (p *PolynomialOptions) Validate() (*PolynomialOptions, error) {
	if p == nil {
		p = NewDefaultPolynomialOptions()
	}
	if p.Degree < 1 {
		return nil, fmt.Errorf("got degree %d, %w", p.Degree, ErrInvalidDegree)
	}
	return p, nil
}

// NewDefaultPolynomialOptions returns options for a straight line fit
func NewDefaultPolynomialOptions() *PolynomialOptions {
	return &PolynomialOptions{
		Degree: 1,
	}
}

// Polynomial fits y = c_d x^d + ... + c_1 x + c_0 with OLS. Years sit far from the origin so the
// fit runs on x centered by its mean and scaled by its standard deviation, which keeps the
// Vandermonde columns well conditioned. Coef converts back to the raw x basis.
type Polynomial struct {
	opt *PolynomialOptions
	ols *OLSRegression

	center float64
	scale  float64
	fitted bool
}

// NewPolynomial initializes a polynomial model ready for fitting
func NewPolynomial(opt *PolynomialOptions) (*Polynomial, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	ols, err := NewOLSRegression(NewDefaultOLSOptions())
	if err != nil {
		return nil, err
	}
	return &Polynomial{
		opt: opt,
		ols: ols,
	}, nil
}

// PolyFit is a convenience wrapper fitting a polynomial of the given degree
func PolyFit(x, y []float64, degree int) (*Polynomial, error) {
	p, err := NewPolynomial(&PolynomialOptions{Degree: degree})
	if err != nil {
		return nil, err
	}
	if err := p.Fit(x, y); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polynomial) design(x []float64) (*mat.Dense, error) {
	u := make([]float64, len(x))
	for i, xPnt := range x {
		u[i] = (xPnt - p.center) / p.scale
	}
	return mat_.Vandermonde(u, p.opt.Degree)
}

// Fit the polynomial to the x, y pairs
func (p *Polynomial) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d points and y has %d points, %w", len(x), len(y), ErrTargetLenMismatch)
	}
	if len(x) < p.opt.Degree+1 {
		return fmt.Errorf("got %d points for degree %d, %w", len(x), p.opt.Degree, ErrInsufficientPoints)
	}
	if !allFinite(x) || !allFinite(y) {
		return ErrNonFiniteInput
	}

	center, scale := stat.PopMeanStdDev(x, nil)
	if scale == 0 {
		scale = 1.0
	}
	p.center = center
	p.scale = scale

	design, err := p.design(x)
	if err != nil {
		return err
	}
	target := mat.NewDense(len(y), 1, append([]float64(nil), y...))
	if err := p.ols.Fit(design, target); err != nil {
		return fmt.Errorf("unable to fit degree %d polynomial, %w", p.opt.Degree, err)
	}
	p.fitted = true
	return nil
}

// Predict evaluates the fit polynomial at every x
func (p *Polynomial) Predict(x []float64) ([]float64, error) {
	if !p.fitted {
		return nil, ErrUntrainedPolynomial
	}
	if len(x) == 0 {
		return []float64{}, nil
	}
	design, err := p.design(x)
	if err != nil {
		return nil, err
	}
	return p.ols.Predict(design)
}

// Degree returns the configured polynomial degree
func (p *Polynomial) Degree() int {
	return p.opt.Degree
}

// Coef returns the polynomial coefficients in the raw x basis ordered from the highest power
// down to the constant term.
func (p *Polynomial) Coef() []float64 {
	if !p.fitted {
		return nil
	}
	d := p.opt.Degree

	// scaled basis coefficients in ascending power
	a := append([]float64{p.ols.Intercept()}, p.ols.Coef()...)

	// expand sum_k a_k ((x - m)/s)^k into ascending powers of x
	asc := make([]float64, d+1)
	for k := 0; k <= d; k++ {
		ak := a[k] / math.Pow(p.scale, float64(k))
		for j := 0; j <= k; j++ {
			asc[j] += ak * float64(combin.Binomial(k, j)) * math.Pow(-p.center, float64(k-j))
		}
	}

	desc := make([]float64, d+1)
	for i := range asc {
		desc[d-i] = asc[i]
	}
	return desc
}

// Score computes the coefficient of determination of the fit against x, y
func (p *Polynomial) Score(x, y []float64) (float64, error) {
	res, err := p.Predict(x)
	if err != nil {
		return 0.0, err
	}
	if len(res) != len(y) {
		return 0.0, fmt.Errorf("predicted %d points against %d targets, %w", len(res), len(y), ErrTargetLenMismatch)
	}
	return stat.RSquaredFrom(res, y, nil), nil
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
