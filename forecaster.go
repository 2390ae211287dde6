package forecaster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/report"
)

var ErrNoOutputPath = errors.New("no output path")

// Forecaster runs the forecast, trend and report stages for a single request
type Forecaster struct {
	opt     *Options
	builder *report.Builder
	logger  *slog.Logger
}

// New creates a new instance of a Forecaster using the provided options. If no options are provided
// a default is used. The opener receives the saved workbook; nil disables opening.
func New(opt *Options, opener report.Opener, logger *slog.Logger) (*Forecaster, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	builder, err := report.NewBuilder(opt.ReportOptions, opener, logger)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize report builder, %w", err)
	}

	return &Forecaster{
		opt:     opt,
		builder: builder,
		logger:  logger,
	}, nil
}

// Run predicts the requested years, links the forecast to the last sample, writes the workbook to
// outPath and any configured side outputs.
func (f *Forecaster) Run(ctx context.Context, samples []dataset.Sample, years []dataset.YearRequest, outPath string) (*Results, error) {
	if outPath == "" {
		return nil, ErrNoOutputPath
	}

	fc, err := forecast.New(f.opt.ForecastOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecast, %w", err)
	}
	if err := fc.Fit(samples); err != nil {
		return nil, fmt.Errorf("unable to fit %s model, %w", fc.Model(), err)
	}
	eq, err := fc.ModelEq()
	if err != nil {
		return nil, err
	}
	f.logger.Info("model fit", "model", fc.Model().String(), "equation", eq, "samples", len(samples))

	predicted, err := fc.Predict(years)
	if err != nil {
		return nil, fmt.Errorf("unable to predict %d years, %w", len(years), err)
	}
	linked := forecast.Connect(samples, predicted)

	data, err := f.builder.Build(ctx, fc.Model(), samples, linked, outPath)
	if err != nil {
		return nil, fmt.Errorf("unable to build report, %w", err)
	}

	res := &Results{
		Model:       fc.Model(),
		Equation:    eq,
		ModelScores: fc.Scores(),
		Samples:     samples,
		Forecast:    linked,
		Trend:       data.Trend,
		OutputPath:  outPath,
	}

	if f.opt.HTMLPath != "" {
		if err := report.WriteHTML(f.opt.HTMLPath, data); err != nil {
			return nil, err
		}
		res.HTMLPath = f.opt.HTMLPath
		f.logger.Info("charts rendered", "path", f.opt.HTMLPath)
	}

	if f.opt.SummaryPath != "" {
		if err := res.WriteSummaryFile(f.opt.SummaryPath); err != nil {
			return nil, err
		}
		f.logger.Info("summary written", "path", f.opt.SummaryPath)
	}
	return res, nil
}
