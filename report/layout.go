package report

import (
	"fmt"
	"strings"
)

const (
	ColYear       = "A"
	ColSales      = "B"
	ColPrediction = "C"
	ColTrend      = "D"
	ColUpper      = "E"
	ColLower      = "F"

	HeaderRow    = 1
	FirstDataRow = 2
)

// Header is the first row of the report sheet from column A onward
var Header = []any{"Year", "Total Sales", "Prediction", "Trend Sales", "Trend Upper", "Trend Lower"}

// FormulaLabel precedes the trend formula string
const FormulaLabel = "Trend Formula:"

// Layout describes where every block of the sheet lands for a given history and forecast length
type Layout struct {
	NumSamples  int
	NumForecast int
	FormulaRow  int
	// FormulaMoved is set when the requested formula row would have overwritten data
	FormulaMoved bool
}

// NewLayout resolves the formula row. A row inside the data block is pushed two rows below the
// last data row so the label never overwrites a year or sales cell.
func NewLayout(numSamples, numForecast, formulaRow int) Layout {
	l := Layout{
		NumSamples:  numSamples,
		NumForecast: numForecast,
		FormulaRow:  formulaRow,
	}
	if formulaRow <= l.LastRow() {
		l.FormulaRow = l.LastRow() + 2
		l.FormulaMoved = true
	}
	return l
}

// LastRow is the last row holding either history or forecast values
func (l Layout) LastRow() int {
	return HeaderRow + l.NumSamples + l.NumForecast
}

// SampleRow returns the row of the i-th historical sample
func (l Layout) SampleRow(i int) int {
	return FirstDataRow + i
}

// ForecastRow returns the row of the i-th forecast point
func (l Layout) ForecastRow(i int) int {
	return FirstDataRow + l.NumSamples + i
}

// Cell joins a column and row into an A1 reference
func Cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// quoteSheet wraps a sheet name for use in a formula reference
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// Ref returns an absolute reference to a single cell, e.g. 'Prediction Data'!$B$1
func Ref(sheet, col string, row int) string {
	return fmt.Sprintf("%s!$%s$%d", quoteSheet(sheet), col, row)
}

// RangeRef returns an absolute reference to a column range, e.g. 'Prediction Data'!$B$2:$B$9
func RangeRef(sheet, col string, startRow, endRow int) string {
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", quoteSheet(sheet), col, startRow, col, endRow)
}
