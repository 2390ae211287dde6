package forecast

import "github.com/aouyang1/go-salesforecaster/dataset"

// Connect prepends a copy of the last historical sample to the forecast so the history and
// prediction series share the transition year when plotted. The input forecast is not modified.
func Connect(samples []dataset.Sample, forecast []dataset.ForecastPoint) []dataset.ForecastPoint {
	out := make([]dataset.ForecastPoint, 0, len(forecast)+1)
	if len(samples) > 0 {
		last := samples[len(samples)-1]
		out = append(out, dataset.ForecastPoint{Year: last.Year, TotalSales: last.TotalSales})
	}
	return append(out, forecast...)
}
