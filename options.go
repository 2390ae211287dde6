package forecaster

import (
	"fmt"

	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/report"
)

// Options configures every stage of the pipeline. HTMLPath and SummaryPath are optional side
// outputs and are skipped when empty.
type Options struct {
	ForecastOptions *forecast.Options
	ReportOptions   *report.Options

	HTMLPath    string
	SummaryPath string
}

// NewDefaultOptions returns a cubic spline forecast reported on the default sheet layout
func NewDefaultOptions() *Options {
	return &Options{
		ForecastOptions: forecast.NewDefaultOptions(),
		ReportOptions:   report.NewDefaultOptions(),
	}
}

// Validate fills in missing stage options with their defaults
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if o.ForecastOptions == nil {
		o.ForecastOptions = forecast.NewDefaultOptions()
	}
	reportOpt, err := o.ReportOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid report options, %w", err)
	}
	o.ReportOptions = reportOpt
	return o, nil
}
