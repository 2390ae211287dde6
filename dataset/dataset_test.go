package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYearDataset(t *testing.T) {
	testData := map[string]struct {
		x        []float64
		y        []float64
		expected *YearDataset
		err      error
	}{
		"no samples": {
			err: ErrNoSamples,
		},
		"length mismatch": {
			y:   []float64{1},
			err: ErrDatasetLenMismatch,
		},
		"valid": {
			x: []float64{2020, 2021},
			y: []float64{1, 2},
			expected: &YearDataset{
				X: []float64{2020, 2021},
				Y: []float64{1, 2},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := NewYearDataset(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestFromSamples(t *testing.T) {
	ds, err := FromSamples([]Sample{{2022, 140}, {2020, 100}, {2021, 120}})
	require.Nil(t, err)
	assert.Equal(t, []float64{2022, 2020, 2021}, ds.X)
	assert.Equal(t, []float64{140, 100, 120}, ds.Y)

	_, err = FromSamples(nil)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestSortByYear(t *testing.T) {
	ds := &YearDataset{
		X: []float64{2022, 2020, 2021},
		Y: []float64{140, 100, 120},
	}
	sorted := ds.SortByYear()
	assert.Equal(t, []float64{2020, 2021, 2022}, sorted.X)
	assert.Equal(t, []float64{100, 120, 140}, sorted.Y)

	// original untouched
	assert.Equal(t, []float64{2022, 2020, 2021}, ds.X)
}

func TestCopy(t *testing.T) {
	ds := &YearDataset{X: []float64{2020}, Y: []float64{5}}
	c := ds.Copy()
	c.Y[0] = 10
	assert.Equal(t, 5.0, ds.Y[0])
	assert.Equal(t, 1, c.Len())
}

func TestDecode(t *testing.T) {
	samples, err := DecodeSamples(`[{"year":2020,"totalSales":100},{"year":2021,"totalSales":120.5}]`)
	require.Nil(t, err)
	assert.Equal(t, []Sample{{2020, 100}, {2021, 120.5}}, samples)

	years, err := DecodeYears(`[{"year":2023,"totalSales":null},{"year":2024}]`)
	require.Nil(t, err)
	assert.Equal(t, []YearRequest{{2023}, {2024}}, years)
	assert.Equal(t, []float64{2023, 2024}, Years(years))

	_, err = DecodeSamples(`not json`)
	assert.NotNil(t, err)

	_, err = DecodeYears(`{"year":2023}`)
	assert.NotNil(t, err)
}

func TestGenerators(t *testing.T) {
	x := GenerateYears(2020, 3)
	assert.Equal(t, []float64{2020, 2021, 2022}, x)

	y := make(Series, 3)
	y.Add(GenerateConstY(3, 10)).
		Add(GeneratePolyY(x, 2020, 0, 2, 1))
	assert.InDeltaSlice(t, []float64{10, 13, 18}, y, 1e-12)

	g := GenerateGrowthY(x, 2020, 100, 0)
	assert.InDeltaSlice(t, []float64{100, 100, 100}, g, 1e-12)

	assert.Equal(t, GenerateNoise(5, 1.0, 42), GenerateNoise(5, 1.0, 42))

	assert.Equal(t, []Sample{{2020, 10}, {2021, 13}, {2022, 18}}, ToSamples(x, []float64{10, 13, 18}))
}
