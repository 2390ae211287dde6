package trend

import (
	"math"
	"testing"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/linearmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *Options
		expected *Options
		err      error
	}{
		"nil":            {nil, NewDefaultOptions(), nil},
		"default degree": {&Options{BandWidth: 3}, &Options{Degree: 2, BandWidth: 3}, nil},
		"zero band":      {&Options{Degree: 2}, nil, ErrInvalidBandWidth},
		"negative band":  {&Options{Degree: 2, BandWidth: -1}, nil, ErrInvalidBandWidth},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestComputeResidualBand(t *testing.T) {
	// the cubic contrast -1, 3, -3, 1 is orthogonal to any quadratic over 4 evenly spaced
	// years so the trend is flat and the residual population std dev is sqrt(5)
	samples := []dataset.Sample{
		{Year: 2020, TotalSales: 9},
		{Year: 2021, TotalSales: 13},
	}
	fc := []dataset.ForecastPoint{
		{Year: 2022, TotalSales: 7},
		{Year: 2023, TotalSales: 11},
	}

	tr, err := Compute(samples, fc, nil)
	require.Nil(t, err)

	assert.InDelta(t, math.Sqrt(5), tr.StdDev, 1e-9)
	require.Len(t, tr.Coef, 3)
	assert.InDelta(t, 0.0, tr.Coef[0], 1e-6)

	expectedUpper := math.Round((10+2*math.Sqrt(5))*100) / 100
	expectedLower := math.Round((10-2*math.Sqrt(5))*100) / 100
	require.Len(t, tr.Points, 4)
	for i, p := range tr.Points {
		assert.Equal(t, 2020+i, p.Year)
		assert.InDelta(t, 10.0, p.Trend, 1e-9)
		assert.InDelta(t, expectedUpper, p.Upper, 1e-9)
		assert.InDelta(t, expectedLower, p.Lower, 1e-9)
	}

	trend, upper, lower := tr.Values()
	assert.Len(t, trend, 4)
	assert.Equal(t, 14.47, upper[0])
	assert.Equal(t, 5.53, lower[3])
}

func TestComputeExactQuadratic(t *testing.T) {
	x := dataset.GenerateYears(2018, 6)
	y := dataset.GeneratePolyY(x, 2018, 100, 10, 2)
	samples := dataset.ToSamples(x[:4], y[:4])
	fc := dataset.ToSamples(x[4:], y[4:])

	tr, err := Compute(samples, forecast.Connect(samples, fc), nil)
	require.Nil(t, err)

	assert.InDelta(t, 0.0, tr.StdDev, 1e-6)
	for i, p := range tr.Points {
		assert.Equal(t, p.Trend, p.Upper, "point %d", i)
		assert.Equal(t, p.Trend, p.Lower, "point %d", i)
	}
	// history, continuity point, forecast
	assert.Len(t, tr.Points, 7)
	assert.Equal(t, 2021, tr.Points[4].Year)

	assert.Regexp(t, `^y = 2\.0000x² \+ -8062\.0000x \+ \d+\.\d{4}$`, tr.Formula)
	assert.InDelta(t, 1.0, tr.Scores.R2, 1e-9)
}

func TestComputeBandOrdering(t *testing.T) {
	x := dataset.GenerateYears(2010, 12)
	y := make(dataset.Series, len(x))
	y.Add(dataset.GenerateGrowthY(x, 2010, 5000, 0.05)).
		Add(dataset.GenerateNoise(len(x), 400, 11))

	samples := dataset.ToSamples(x[:9], y[:9])
	fc, err := forecast.Predict(samples, []dataset.YearRequest{{Year: 2019}, {Year: 2020}, {Year: 2021}}, forecast.Linear)
	require.Nil(t, err)

	for _, width := range []float64{0.5, 2, 3} {
		tr, err := Compute(samples, forecast.Connect(samples, fc), &Options{Degree: 2, BandWidth: width})
		require.Nil(t, err)
		require.Len(t, tr.Points, 13)
		assert.Greater(t, tr.StdDev, 0.0)
		for _, p := range tr.Points {
			assert.LessOrEqual(t, p.Lower, p.Trend)
			assert.LessOrEqual(t, p.Trend, p.Upper)
			for _, v := range []float64{p.Trend, p.Upper, p.Lower} {
				assert.InDelta(t, math.Round(v*100), v*100, 1e-6, "more than 2 decimals: %v", v)
			}
		}
	}
}

func TestComputeSkipsMissingSales(t *testing.T) {
	samples := []dataset.Sample{
		{Year: 2020, TotalSales: 1},
		{Year: 2021, TotalSales: 4},
		{Year: 2022, TotalSales: 9},
	}
	fc := []dataset.ForecastPoint{{Year: 2023, TotalSales: math.NaN()}}

	tr, err := Compute(samples, fc, nil)
	require.Nil(t, err)
	assert.Len(t, tr.Points, 3)
}

func TestComputeErrors(t *testing.T) {
	samples := []dataset.Sample{{Year: 2020, TotalSales: 1}}
	fc := []dataset.ForecastPoint{{Year: 2020, TotalSales: 1}}

	_, err := Compute(samples, fc, nil)
	assert.ErrorIs(t, err, linearmodel.ErrInsufficientPoints)

	_, err = Compute(nil, nil, nil)
	assert.ErrorIs(t, err, dataset.ErrNoSamples)

	_, err = Compute(samples, fc, &Options{BandWidth: -2})
	assert.ErrorIs(t, err, ErrInvalidBandWidth)
}
