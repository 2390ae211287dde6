package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aouyang1/go-salesforecaster/dataset"
	"github.com/aouyang1/go-salesforecaster/forecast"
	"github.com/aouyang1/go-salesforecaster/trend"
	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidFormulaRow = errors.New("formula row must be at least 1")
	ErrNoSheetName       = errors.New("no sheet name")
	ErrNoTrend           = errors.New("no trend to lay out")
)

const (
	DefaultSheetName   = "Prediction Data"
	DefaultFormulaRow  = 16
	DefaultOpenTimeout = 30 * time.Second

	PredictionChartCell = "H5"
	TrendChartCell      = "R5"
)

// Options configures the workbook layout
type Options struct {
	SheetName  string
	FormulaRow int

	TrendOptions *trend.Options
	OpenTimeout  time.Duration
}

// NewDefaultOptions returns the standard single sheet layout
func NewDefaultOptions() *Options {
	return &Options{
		SheetName:    DefaultSheetName,
		FormulaRow:   DefaultFormulaRow,
		TrendOptions: trend.NewDefaultOptions(),
		OpenTimeout:  DefaultOpenTimeout,
	}
}

// Validate fills in defaults and checks the layout settings
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if o.SheetName == "" {
		return nil, ErrNoSheetName
	}
	if o.FormulaRow < 1 {
		return nil, fmt.Errorf("got %d, %w", o.FormulaRow, ErrInvalidFormulaRow)
	}
	if o.OpenTimeout <= 0 {
		o.OpenTimeout = DefaultOpenTimeout
	}
	return o, nil
}

// Data is everything placed on the report sheet
type Data struct {
	Model    forecast.Model
	Samples  []dataset.Sample
	Forecast []dataset.ForecastPoint
	Trend    *trend.Trend
}

// Builder lays out the report workbook, saves it and hands it to an Opener
type Builder struct {
	opt    *Options
	opener Opener
	logger *slog.Logger
}

// NewBuilder creates a report builder. A nil opener disables opening and a nil logger
// falls back to slog.Default.
func NewBuilder(opt *Options, opener Opener, logger *slog.Logger) (*Builder, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if opener == nil {
		opener = NopOpener{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		opt:    opt,
		opener: opener,
		logger: logger,
	}, nil
}

// Build computes the trend over the history and continuity linked forecast, writes the workbook
// to path and opens it. A failure to open is logged and does not fail the build.
func (b *Builder) Build(ctx context.Context, model forecast.Model, samples []dataset.Sample, fc []dataset.ForecastPoint, path string) (*Data, error) {
	tr, err := trend.Compute(samples, fc, b.opt.TrendOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to compute trend, %w", err)
	}
	b.logger.Info("trend formula", "formula", tr.Formula, "std_dev", tr.StdDev)

	data := &Data{
		Model:    model,
		Samples:  samples,
		Forecast: fc,
		Trend:    tr,
	}

	f, err := b.Workbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("unable to save workbook to %s, %w", path, err)
	}
	b.logger.Info("workbook saved", "path", path)

	b.open(ctx, path)
	return data, nil
}

func (b *Builder) open(ctx context.Context, path string) {
	ctx, cancel := context.WithTimeout(ctx, b.opt.OpenTimeout)
	defer cancel()
	if err := b.opener.Open(ctx, path); err != nil {
		b.logger.Error("unable to open the generated file", "path", path, "error", err)
	}
}

// Workbook lays out the data and charts in a new in memory workbook
func (b *Builder) Workbook(d *Data) (*excelize.File, error) {
	if d == nil || d.Trend == nil {
		return nil, ErrNoTrend
	}
	sheet := b.opt.SheetName
	layout := NewLayout(len(d.Samples), len(d.Forecast), b.opt.FormulaRow)
	if layout.FormulaMoved {
		b.logger.Warn("formula row overlaps data, moving it below the data",
			"requested_row", b.opt.FormulaRow,
			"row", layout.FormulaRow,
		)
	}

	f := excelize.NewFile()
	if err := b.layout(f, sheet, layout, d); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (b *Builder) layout(f *excelize.File, sheet string, layout Layout, d *Data) error {
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("unable to name sheet %q, %w", sheet, err)
	}

	header := append([]any(nil), Header...)
	if err := f.SetSheetRow(sheet, Cell(ColYear, HeaderRow), &header); err != nil {
		return fmt.Errorf("unable to write header, %w", err)
	}

	cells := make(map[string]any)
	for i, s := range d.Samples {
		row := layout.SampleRow(i)
		cells[Cell(ColYear, row)] = s.Year
		cells[Cell(ColSales, row)] = s.TotalSales
	}
	for i, p := range d.Forecast {
		row := layout.ForecastRow(i)
		cells[Cell(ColYear, row)] = p.Year
		cells[Cell(ColPrediction, row)] = p.TotalSales
	}
	for i, p := range d.Trend.Points {
		row := FirstDataRow + i
		cells[Cell(ColTrend, row)] = p.Trend
		cells[Cell(ColUpper, row)] = p.Upper
		cells[Cell(ColLower, row)] = p.Lower
	}
	cells[Cell(ColYear, layout.FormulaRow)] = FormulaLabel
	cells[Cell(ColSales, layout.FormulaRow)] = d.Trend.Formula

	for cell, val := range cells {
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return fmt.Errorf("unable to set %s, %w", cell, err)
		}
	}

	if err := f.AddChart(sheet, PredictionChartCell, PredictionChart(sheet, d.Model, layout)); err != nil {
		return fmt.Errorf("unable to add prediction chart, %w", err)
	}
	if err := f.AddChart(sheet, TrendChartCell, TrendChart(sheet, layout)); err != nil {
		return fmt.Errorf("unable to add trend chart, %w", err)
	}
	return nil
}
