package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast/util"
	"github.com/aouyang1/go-salesforecaster/interp"
	"github.com/aouyang1/go-salesforecaster/linearmodel"
)

var (
	ErrUninitializedForecast = errors.New("uninitialized forecast")
	ErrUntrainedForecast     = errors.New("forecast has not been trained yet")
	ErrNonPositiveSales      = errors.New("exponential model needs strictly positive sales, log undefined")
)

// predictor is the fit/evaluate contract shared by every model
type predictor interface {
	Fit(x, y []float64) error
	Predict(x []float64) ([]float64, error)
}

// Forecast fits one of the supported models to yearly sales and predicts future years.
type Forecast struct {
	opt    *Options
	scores *Scores // in sample fit scores

	model   predictor
	trained bool
}

// New creates a new forecast instance with the given options. If none are provided, a default
// is used
func New(opt *Options) (*Forecast, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	model, err := newPredictor(opt)
	if err != nil {
		return nil, err
	}
	return &Forecast{opt: opt, model: model}, nil
}

func newPredictor(opt *Options) (predictor, error) {
	switch opt.Model {
	case CubicSpline:
		return interp.NewCubicSpline(opt.SplineBoundary)
	case Linear:
		return linearmodel.NewPolynomial(&linearmodel.PolynomialOptions{Degree: 1})
	case Polynomial:
		return linearmodel.NewPolynomial(&linearmodel.PolynomialOptions{Degree: 2})
	case Exponential:
		line, err := linearmodel.NewPolynomial(&linearmodel.PolynomialOptions{Degree: 1})
		if err != nil {
			return nil, err
		}
		return &exponential{line: line}, nil
	default:
		return nil, fmt.Errorf("model '%s' is not supported, %w", opt.Model, ErrUnsupportedModel)
	}
}

// Fit trains the configured model on the historical samples
func (f *Forecast) Fit(samples []dataset.Sample) error {
	if f == nil || f.model == nil {
		return ErrUninitializedForecast
	}

	trainingData, err := dataset.FromSamples(samples)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}

	if err := f.model.Fit(trainingData.X, trainingData.Y); err != nil {
		return fmt.Errorf("unable to fit %s model, %w", f.opt.Model, err)
	}
	f.trained = true

	fitted, err := f.model.Predict(trainingData.X)
	if err != nil {
		return fmt.Errorf("unable to predict training data, %w", err)
	}
	f.scores, err = NewScores(fitted, trainingData.Y)
	if err != nil {
		return fmt.Errorf("unable to score %s model, %w", f.opt.Model, err)
	}
	return nil
}

// Predict evaluates the trained model at each requested year. The output keeps the order of the
// input and every value is rounded to two decimals.
func (f *Forecast) Predict(years []dataset.YearRequest) ([]dataset.ForecastPoint, error) {
	if f == nil || f.model == nil {
		return nil, ErrUninitializedForecast
	}
	if !f.trained {
		return nil, ErrUntrainedForecast
	}

	res, err := f.model.Predict(dataset.Years(years))
	if err != nil {
		return nil, fmt.Errorf("unable to predict %s model, %w", f.opt.Model, err)
	}

	points := make([]dataset.ForecastPoint, 0, len(years))
	for i, yr := range years {
		points = append(points, dataset.ForecastPoint{
			Year:       yr.Year,
			TotalSales: util.RoundSales(res[i]),
		})
	}
	return points, nil
}

// Model returns the configured model kind
func (f *Forecast) Model() Model {
	return f.opt.Model
}

// Scores returns the in sample fit scores, nil until trained
func (f *Forecast) Scores() *Scores {
	return f.scores
}

// ModelEq returns a printable form of the trained model
func (f *Forecast) ModelEq() (string, error) {
	if !f.trained {
		return "", ErrUntrainedForecast
	}
	switch m := f.model.(type) {
	case *interp.CubicSpline:
		return fmt.Sprintf("piecewise cubic, %d knots, %s", len(m.Knots()), f.opt.SplineBoundary), nil
	case *linearmodel.Polynomial:
		return PolyEq(m.Coef(), 4), nil
	case *exponential:
		return fmt.Sprintf("y = %.4g * exp(%.4f * x)", m.A(), m.B()), nil
	default:
		return "", fmt.Errorf("%s, %w", f.opt.Model, ErrUnsupportedModel)
	}
}

// Predict fits the model to the samples and predicts the requested years in one call.
func Predict(samples []dataset.Sample, years []dataset.YearRequest, model Model) ([]dataset.ForecastPoint, error) {
	opt := NewDefaultOptions()
	opt.Model = model
	f, err := New(opt)
	if err != nil {
		return nil, err
	}
	if err := f.Fit(samples); err != nil {
		return nil, err
	}
	return f.Predict(years)
}

// exponential fits ln(y) = ln(a) + b*x and predicts a*exp(b*x)
type exponential struct {
	line *linearmodel.Polynomial
}

func (e *exponential) Fit(x, y []float64) error {
	logY := make([]float64, len(y))
	for i, v := range y {
		if v <= 0 || math.IsNaN(v) {
			year := math.NaN()
			if i < len(x) {
				year = x[i]
			}
			return fmt.Errorf("sales of %v in %v, %w", v, year, ErrNonPositiveSales)
		}
		logY[i] = math.Log(v)
	}
	return e.line.Fit(x, logY)
}

func (e *exponential) Predict(x []float64) ([]float64, error) {
	logRes, err := e.line.Predict(x)
	if err != nil {
		return nil, err
	}
	// exp of the fitted log line equals a*exp(b*x) without underflowing a for years far from 0
	return util.SliceMap(logRes, math.Exp), nil
}

// A returns the multiplicative coefficient exp(intercept)
func (e *exponential) A() float64 {
	coef := e.line.Coef()
	if len(coef) != 2 {
		return math.NaN()
	}
	return math.Exp(coef[1])
}

// B returns the growth rate
func (e *exponential) B() float64 {
	coef := e.line.Coef()
	if len(coef) != 2 {
		return math.NaN()
	}
	return coef[0]
}
