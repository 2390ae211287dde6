// Command salesforecast predicts yearly sales for the requested years and writes an xlsx report
// with the history, the forecast, a quadratic trend band and two line charts.
//
// Usage:
//
//	salesforecast [flags] <samples-json> <years-json> <model> <output-path>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	forecaster "github.com/aouyang1/go-salesforecaster"
	"github.com/aouyang1/go-salesforecaster/config"
	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/interp"
	"github.com/aouyang1/go-salesforecaster/logging"
	"github.com/aouyang1/go-salesforecaster/report"
	"github.com/aouyang1/go-salesforecaster/trend"
)

const numArgs = 4

var ErrUsage = errors.New("expected arguments: <samples-json> <years-json> <model> <output-path>")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		slog.Error("forecast failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("salesforecast", flag.ContinueOnError)
	fs.SetOutput(stdout)
	htmlPath := fs.String("html", cfg.Report.HTMLPath, "also render the charts to this html file")
	summaryPath := fs.String("summary", cfg.Report.SummaryPath, "write a json summary of the run to this file")
	noOpen := fs.Bool("no-open", !cfg.Report.OpenFile, "do not open the workbook after saving it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(stdout, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	logger.Info("received arguments", "count", fs.NArg(), "args", strings.Join(fs.Args(), " "))
	if fs.NArg() != numArgs {
		return fmt.Errorf("got %d arguments, %w", fs.NArg(), ErrUsage)
	}

	samples, err := dataset.DecodeSamples(fs.Arg(0))
	if err != nil {
		return err
	}
	years, err := dataset.DecodeYears(fs.Arg(1))
	if err != nil {
		return err
	}
	model, err := forecast.ParseModel(fs.Arg(2))
	if err != nil {
		return err
	}
	outPath := fs.Arg(3)

	opt, err := options(cfg, model)
	if err != nil {
		return err
	}
	opt.HTMLPath = *htmlPath
	opt.SummaryPath = *summaryPath

	var opener report.Opener = report.NewSystemOpener()
	if *noOpen {
		opener = report.NopOpener{}
	}

	f, err := forecaster.New(opt, opener, logger)
	if err != nil {
		return err
	}
	res, err := f.Run(ctx, samples, years, outPath)
	if err != nil {
		return err
	}

	for _, p := range res.Forecast {
		logger.Info("forecast", "year", p.Year, "totalSales", p.TotalSales)
	}
	return nil
}

func options(cfg *config.Config, model forecast.Model) (*forecaster.Options, error) {
	boundary, err := interp.ParseBoundary(cfg.Forecast.SplineBoundary)
	if err != nil {
		return nil, err
	}

	opt := forecaster.NewDefaultOptions()
	opt.ForecastOptions.Model = model
	opt.ForecastOptions.SplineBoundary = boundary

	opt.ReportOptions.SheetName = cfg.Report.SheetName
	opt.ReportOptions.FormulaRow = cfg.Report.FormulaRow
	opt.ReportOptions.OpenTimeout = cfg.Report.OpenTimeout
	opt.ReportOptions.TrendOptions = &trend.Options{
		Degree:    trend.DefaultDegree,
		BandWidth: cfg.Forecast.BandWidth,
	}
	return opt, nil
}
