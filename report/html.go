package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// gap marks a missing value so echarts breaks the line instead of drawing zero
const gap = "-"

func lineData(vals []float64) []opts.LineData {
	data := make([]opts.LineData, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			data[i] = opts.LineData{Value: gap}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func newLine(title, yName string, years []string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Right: "0"}),
	)
	line.SetXAxis(years)
	return line
}

func style(color, dash string) charts.SeriesOpts {
	return charts.WithLineStyleOpts(opts.LineStyle{Color: "#" + color, Type: dash})
}

// Columns returns the report columns B..F aligned on the year column, with NaN where the sheet
// would hold an empty cell
func Columns(d *Data) (years []string, cols map[string][]float64) {
	layout := NewLayout(len(d.Samples), len(d.Forecast), math.MaxInt)
	n := layout.LastRow() - HeaderRow

	years = make([]string, n)
	cols = make(map[string][]float64)
	for _, col := range []string{ColSales, ColPrediction, ColTrend, ColUpper, ColLower} {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = math.NaN()
		}
		cols[col] = vals
	}

	for i, s := range d.Samples {
		years[i] = strconv.Itoa(s.Year)
		cols[ColSales][i] = s.TotalSales
	}
	for i, p := range d.Forecast {
		j := layout.ForecastRow(i) - FirstDataRow
		years[j] = strconv.Itoa(p.Year)
		cols[ColPrediction][j] = p.TotalSales
	}
	if d.Trend != nil {
		trendVals, upper, lower := d.Trend.Values()
		copy(cols[ColTrend], trendVals)
		copy(cols[ColUpper], upper)
		copy(cols[ColLower], lower)
	}
	return years, cols
}

// Charts builds echarts renditions of the prediction and trend charts of the workbook
func Charts(d *Data) (*charts.Line, *charts.Line) {
	years, cols := Columns(d)

	prediction := newLine(PredictionChartTitle(d.Model), "Total Sales", years)
	prediction.
		AddSeries("Total Sales", lineData(cols[ColSales]), style(Blue, "solid")).
		AddSeries("Prediction", lineData(cols[ColPrediction]), style(Red, "dotted"))

	tr := newLine(TrendChartTitle, "Sales", years)
	tr.
		AddSeries("Trend Sales", lineData(cols[ColTrend]), style(Blue, "solid")).
		AddSeries("Trend Upper", lineData(cols[ColUpper]), style(Green, "solid")).
		AddSeries("Trend Lower", lineData(cols[ColLower]), style(Red, "solid"))

	return prediction, tr
}

// RenderHTML writes both charts to a single html page
func RenderHTML(w io.Writer, d *Data) error {
	if d == nil || d.Trend == nil {
		return ErrNoTrend
	}
	prediction, tr := Charts(d)
	page := components.NewPage()
	page.AddCharts(prediction, tr)
	return page.Render(w)
}

// WriteHTML renders the charts into the file at path
func WriteHTML(path string, d *Data) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s, %w", path, err)
	}
	defer file.Close()

	if err := RenderHTML(file, d); err != nil {
		return fmt.Errorf("unable to render html charts, %w", err)
	}
	return nil
}
