package util

import "math"

// DefaultPlaces is the number of decimals kept for sales figures
const DefaultPlaces = 2

func IndentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

func SliceMap(arr []float64, lambda func(float64) float64) []float64 {
	for i, v := range arr {
		arr[i] = lambda(v)
	}
	return arr
}

// Round rounds v to the given number of decimals with ties going to the even digit
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(v*pow) / pow
}

// RoundSales rounds to DefaultPlaces
func RoundSales(v float64) float64 {
	return Round(v, DefaultPlaces)
}
