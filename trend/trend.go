package trend

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/forecast/util"
	"github.com/aouyang1/go-salesforecaster/linearmodel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidBandWidth = errors.New("band width must be positive")

const (
	DefaultDegree    = 2
	DefaultBandWidth = 2.0
	// FormulaPlaces is the number of decimals printed per formula coefficient
	FormulaPlaces = 4
)

// Options configures the trend fit and the width of the confidence band in residual standard
// deviations
type Options struct {
	Degree    int     `json:"degree"`
	BandWidth float64 `json:"band_width"`
}

// NewDefaultOptions returns a quadratic trend with a two standard deviation band
func NewDefaultOptions() *Options {
	return &Options{
		Degree:    DefaultDegree,
		BandWidth: DefaultBandWidth,
	}
}

// Validate fills in defaults and checks the band width
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if o.Degree == 0 {
		o.Degree = DefaultDegree
	}
	if o.BandWidth <= 0 || math.IsNaN(o.BandWidth) {
		return nil, fmt.Errorf("got %v, %w", o.BandWidth, ErrInvalidBandWidth)
	}
	return o, nil
}

// Point is the trend value and its confidence band for one combined year
type Point struct {
	Year  int     `json:"year"`
	Trend float64 `json:"trend"`
	Upper float64 `json:"trendUpper"`
	Lower float64 `json:"trendLower"`
}

// Trend is a polynomial fit over history and forecast with a residual based confidence band
type Trend struct {
	Points  []Point          `json:"points"`
	Coef    []float64        `json:"coefficients"`
	StdDev  float64          `json:"residual_std_dev"`
	Formula string           `json:"formula"`
	Scores  *forecast.Scores `json:"scores"`
}

// Combine concatenates samples and forecast points into aligned year and sales slices.
// Forecast points without a sales value are dropped.
func Combine(samples []dataset.Sample, fc []dataset.ForecastPoint) (*dataset.YearDataset, error) {
	x := make([]float64, 0, len(samples)+len(fc))
	y := make([]float64, 0, len(samples)+len(fc))
	for _, s := range samples {
		x = append(x, float64(s.Year))
		y = append(y, s.TotalSales)
	}
	for _, p := range fc {
		if math.IsNaN(p.TotalSales) {
			continue
		}
		x = append(x, float64(p.Year))
		y = append(y, p.TotalSales)
	}
	return dataset.NewYearDataset(x, y)
}

// Compute fits the trend over the historical samples followed by the forecast points
func Compute(samples []dataset.Sample, fc []dataset.ForecastPoint, opt *Options) (*Trend, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	combined, err := Combine(samples, fc)
	if err != nil {
		return nil, fmt.Errorf("unable to combine history and forecast, %w", err)
	}

	poly, err := linearmodel.PolyFit(combined.X, combined.Y, opt.Degree)
	if err != nil {
		return nil, fmt.Errorf("unable to fit trend, %w", err)
	}
	fitted, err := poly.Predict(combined.X)
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate trend, %w", err)
	}

	residuals := make([]float64, len(fitted))
	floats.SubTo(residuals, combined.Y, fitted)
	_, stdDev := stat.PopMeanStdDev(residuals, nil)

	scores, err := forecast.NewScores(fitted, combined.Y)
	if err != nil {
		return nil, fmt.Errorf("unable to score trend, %w", err)
	}

	band := opt.BandWidth * stdDev
	points := make([]Point, 0, len(fitted))
	for i, val := range fitted {
		points = append(points, Point{
			Year:  int(combined.X[i]),
			Trend: util.RoundSales(val),
			Upper: util.RoundSales(val + band),
			Lower: util.RoundSales(val - band),
		})
	}

	coef := poly.Coef()
	return &Trend{
		Points:  points,
		Coef:    coef,
		StdDev:  stdDev,
		Formula: forecast.PolyEq(coef, FormulaPlaces),
		Scores:  scores,
	}, nil
}

// Values splits the points into trend, upper and lower columns
func (t *Trend) Values() (trend, upper, lower []float64) {
	trend = make([]float64, 0, len(t.Points))
	upper = make([]float64, 0, len(t.Points))
	lower = make([]float64, 0, len(t.Points))
	for _, p := range t.Points {
		trend = append(trend, p.Trend)
		upper = append(upper, p.Upper)
		lower = append(lower, p.Lower)
	}
	return trend, upper, lower
}
