package forecast

import (
	"fmt"
	"strings"
)

var superscripts = map[int]string{2: "²", 3: "³"}

// PolyEq formats polynomial coefficients, ordered from the highest power down, as
// "y = c0x² + c1x + c2" with the given number of decimals.
func PolyEq(coef []float64, places int) string {
	if len(coef) == 0 {
		return "y = 0"
	}
	degree := len(coef) - 1
	terms := make([]string, 0, len(coef))
	for i, c := range coef {
		power := degree - i
		term := fmt.Sprintf("%.*f", places, c)
		switch {
		case power == 1:
			term += "x"
		case power > 1:
			sup, exists := superscripts[power]
			if !exists {
				sup = fmt.Sprintf("^%d", power)
			}
			term += "x" + sup
		}
		terms = append(terms, term)
	}
	return "y = " + strings.Join(terms, " + ")
}
