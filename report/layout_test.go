package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	testData := map[string]struct {
		numSamples  int
		numForecast int
		formulaRow  int
		expectedRow int
		moved       bool
	}{
		"free row":         {5, 4, 16, 16, false},
		"just below data":  {10, 4, 16, 16, false},
		"on last data row": {10, 5, 16, 18, true},
		"inside data":      {20, 6, 16, 29, true},
		"header row":       {3, 2, 1, 8, true},
		"empty":            {0, 0, 16, 16, false},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			l := NewLayout(td.numSamples, td.numForecast, td.formulaRow)
			assert.Equal(t, td.expectedRow, l.FormulaRow)
			assert.Equal(t, td.moved, l.FormulaMoved)
		})
	}
}

func TestLayoutRows(t *testing.T) {
	l := NewLayout(3, 2, 16)
	assert.Equal(t, 6, l.LastRow())
	assert.Equal(t, 2, l.SampleRow(0))
	assert.Equal(t, 4, l.SampleRow(2))
	assert.Equal(t, 5, l.ForecastRow(0))
	assert.Equal(t, 6, l.ForecastRow(1))
}

func TestRefs(t *testing.T) {
	testData := map[string]struct {
		actual   string
		expected string
	}{
		"cell":        {Cell(ColTrend, 7), "D7"},
		"ref":         {Ref("Prediction Data", ColSales, 1), "'Prediction Data'!$B$1"},
		"range":       {RangeRef("Prediction Data", ColYear, 2, 9), "'Prediction Data'!$A$2:$A$9"},
		"quoted name": {Ref("Bob's", ColLower, 1), "'Bob''s'!$F$1"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.actual)
		})
	}
}
