package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyEq(t *testing.T) {
	testData := map[string]struct {
		coef     []float64
		places   int
		expected string
	}{
		"empty":     {nil, 4, "y = 0"},
		"constant":  {[]float64{3}, 2, "y = 3.00"},
		"line":      {[]float64{20, -40300}, 4, "y = 20.0000x + -40300.0000"},
		"quadratic": {[]float64{1.5, -2, 0.12345}, 4, "y = 1.5000x² + -2.0000x + 0.1235"},
		"quartic":   {[]float64{1, 0, 0, 0, 1}, 1, "y = 1.0x^4 + 0.0x³ + 0.0x² + 0.0x + 1.0"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, PolyEq(td.coef, td.places))
		})
	}
}
