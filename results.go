package forecaster

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/forecast/util"
	"github.com/aouyang1/go-salesforecaster/trend"
	"github.com/goccy/go-json"
)

// Results captures everything produced by a single run
type Results struct {
	Model       forecast.Model          `json:"model"`
	Equation    string                  `json:"equation"`
	ModelScores *forecast.Scores        `json:"model_scores"`
	Samples     []dataset.Sample        `json:"samples"`
	Forecast    []dataset.ForecastPoint `json:"forecast"`
	Trend       *trend.Trend            `json:"trend"`
	OutputPath  string                  `json:"output_path"`
	HTMLPath    string                  `json:"html_path,omitempty"`
}

// WriteSummary encodes the results as indented json
func (r *Results) WriteSummary(w io.Writer) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode summary, %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// WriteSummaryFile writes the json summary to path
func (r *Results) WriteSummaryFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s, %w", path, err)
	}
	defer file.Close()
	return r.WriteSummary(file)
}

func (r *Results) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sModel: %s\n", prefix, util.IndentExpand(indent, 0), r.Model); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sEquation: %s\n", prefix, util.IndentExpand(indent, 1), r.Equation); err != nil {
		return err
	}
	if r.ModelScores != nil {
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, util.IndentExpand(indent, 1),
			r.ModelScores.MAPE,
			r.ModelScores.MSE,
			r.ModelScores.R2,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sForecast:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%s\tYear\tSales\t\n", prefix, util.IndentExpand(indent, 1)); err != nil {
		return err
	}
	for _, p := range r.Forecast {
		if _, err := fmt.Fprintf(tbl, "%s%s\t%d\t%.2f\t\n", prefix, util.IndentExpand(indent, 1), p.Year, p.TotalSales); err != nil {
			return err
		}
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	if r.Trend == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%sTrend:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sFormula: %s\n", prefix, util.IndentExpand(indent, 1), r.Trend.Formula); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s%sResidual Std Dev: %.3f\n", prefix, util.IndentExpand(indent, 1), r.Trend.StdDev)
	return err
}
