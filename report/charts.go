package report

import (
	"fmt"

	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/xuri/excelize/v2"
)

const (
	Blue  = "0000FF"
	Green = "00FF00"
	Red   = "FF0000"

	TrendChartTitle = "Trend of Sales (Including Forecast)"

	chartWidth  = 640
	chartHeight = 320
	lineWidth   = 2.25
)

// PredictionChartTitle names the history versus prediction chart after the model
func PredictionChartTitle(model forecast.Model) string {
	return fmt.Sprintf("Sales Prediction (%s)", model.Title())
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func title(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text}}
}

// series builds a line over rows 2..LastRow of col with years from column A as categories
func series(sheet, col string, layout Layout, color string, dash excelize.ChartDashType) excelize.ChartSeries {
	last := layout.LastRow()
	return excelize.ChartSeries{
		Name:       Ref(sheet, col, HeaderRow),
		Categories: RangeRef(sheet, ColYear, FirstDataRow, last),
		Values:     RangeRef(sheet, col, FirstDataRow, last),
		Fill:       solid(color),
		Line: excelize.ChartLine{
			Dash:  dash,
			Width: lineWidth,
		},
	}
}

// PredictionChart plots total sales against the continuity linked prediction
func PredictionChart(sheet string, model forecast.Model, layout Layout) *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			series(sheet, ColSales, layout, Blue, excelize.ChartDashSolid),
			series(sheet, ColPrediction, layout, Red, excelize.ChartDashSysDot),
		},
		Title:        title(PredictionChartTitle(model)),
		XAxis:        excelize.ChartAxis{Title: title("Year")},
		YAxis:        excelize.ChartAxis{Title: title("Total Sales"), MajorGridLines: true},
		Legend:       excelize.ChartLegend{Position: "right"},
		Dimension:    excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
		ShowBlanksAs: "gap",
	}
}

// TrendChart plots the quadratic trend with its upper and lower band
func TrendChart(sheet string, layout Layout) *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			series(sheet, ColTrend, layout, Blue, excelize.ChartDashSolid),
			series(sheet, ColUpper, layout, Green, excelize.ChartDashSolid),
			series(sheet, ColLower, layout, Red, excelize.ChartDashSolid),
		},
		Title:        title(TrendChartTitle),
		XAxis:        excelize.ChartAxis{Title: title("Year")},
		YAxis:        excelize.ChartAxis{Title: title("Sales"), MajorGridLines: true},
		Legend:       excelize.ChartLegend{Position: "right"},
		Dimension:    excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
		ShowBlanksAs: "gap",
	}
}
