package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateYears returns n consecutive years starting at start
func GenerateYears(start, n int) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, float64(start+i))
	}
	return x
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GeneratePolyY evaluates sum(coef[i] * (x-x0)^i) at every year
func GeneratePolyY(x []float64, x0 float64, coef ...float64) Series {
	y := make([]float64, 0, len(x))
	for _, xPnt := range x {
		var val float64
		for i, c := range coef {
			val += c * math.Pow(xPnt-x0, float64(i))
		}
		y = append(y, val)
	}
	return Series(y)
}

// GenerateGrowthY returns a*exp(b*(x-x0)) at every year
func GenerateGrowthY(x []float64, x0, a, b float64) Series {
	y := make([]float64, 0, len(x))
	for _, xPnt := range x {
		y = append(y, a*math.Exp(b*(xPnt-x0)))
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64, seed uint64) Series {
	r := rand.New(rand.NewPCG(seed, seed))
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.NormFloat64()*scale)
	}
	return Series(y)
}

// ToSamples zips years and sales into samples
func ToSamples(x []float64, y []float64) []Sample {
	samples := make([]Sample, 0, len(x))
	for i := range x {
		samples = append(samples, Sample{Year: int(x[i]), TotalSales: y[i]})
	}
	return samples
}
