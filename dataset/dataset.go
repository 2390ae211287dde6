package dataset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoSamples          = errors.New("no historical samples")
	ErrDatasetLenMismatch = errors.New("years have a different length than sales")
)

// Sample is one observed yearly sales total.
type Sample struct {
	Year       int     `json:"year"`
	TotalSales float64 `json:"totalSales"`
}

// YearRequest is a single future year to predict.
type YearRequest struct {
	Year int `json:"year"`
}

// ForecastPoint is a predicted yearly sales total. It shares the shape of a Sample so the
// continuity point can be stored alongside predictions.
type ForecastPoint = Sample

// YearDataset stores years and sales as positionally aligned float slices ready for fitting.
type YearDataset struct {
	X []float64
	Y []float64
}

// NewYearDataset returns a YearDataset given the year and sales slices. Both must have the
// same non-zero length.
func NewYearDataset(x, y []float64) (*YearDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoSamples
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"years have length of %d, but sales has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &YearDataset{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// FromSamples converts samples into a YearDataset keeping the input order.
func FromSamples(samples []Sample) (*YearDataset, error) {
	x := make([]float64, 0, len(samples))
	y := make([]float64, 0, len(samples))
	for _, s := range samples {
		x = append(x, float64(s.Year))
		y = append(y, s.TotalSales)
	}
	return NewYearDataset(x, y)
}

// Copy returns a deep copy of the dataset
func (yd *YearDataset) Copy() *YearDataset {
	xSeries := make([]float64, len(yd.X))
	ySeries := make([]float64, len(yd.Y))
	copy(xSeries, yd.X)
	copy(ySeries, yd.Y)
	return &YearDataset{
		X: xSeries,
		Y: ySeries,
	}
}

// Len returns the number of points in the dataset
func (yd *YearDataset) Len() int {
	return len(yd.X)
}

// SortByYear returns a copy of the dataset ordered by increasing year. Ties keep their input order.
func (yd *YearDataset) SortByYear() *YearDataset {
	idx := make([]int, len(yd.X))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return yd.X[idx[i]] < yd.X[idx[j]]
	})

	out := yd.Copy()
	for i, j := range idx {
		out.X[i] = yd.X[j]
		out.Y[i] = yd.Y[j]
	}
	return out
}

// Years extracts the requested years as floats for model evaluation
func Years(years []YearRequest) []float64 {
	x := make([]float64, 0, len(years))
	for _, yr := range years {
		x = append(x, float64(yr.Year))
	}
	return x
}
