package mat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch    = errors.New("column size mismatch")
	ErrNegativeDegree = errors.New("negative polynomial degree not allowed")
)

// NewDenseFromArray flattens a row major 2D slice into a Dense matrix
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if m == 0 || n <= 0 {
		return nil, mat.ErrZeroLength
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// Vandermonde builds the design matrix with columns x^1 .. x^degree. The constant column is
// left out since the regression adds its own intercept.
func Vandermonde(x []float64, degree int) (*mat.Dense, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree %d, %w", degree, ErrNegativeDegree)
	}
	if len(x) == 0 || degree == 0 {
		return nil, mat.ErrZeroLength
	}

	rows := make([][]float64, len(x))
	for i, xPnt := range x {
		row := make([]float64, degree)
		for p := 1; p <= degree; p++ {
			row[p-1] = math.Pow(xPnt, float64(p))
		}
		rows[i] = row
	}
	return NewDenseFromArray(rows)
}
