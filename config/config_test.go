package config

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "utf-8", cfg.Log.Encoding)
	assert.Equal(t, "not-a-knot", cfg.Forecast.SplineBoundary)
	assert.Equal(t, 2.0, cfg.Forecast.BandWidth)
	assert.Equal(t, 16, cfg.Report.FormulaRow)
	assert.Equal(t, "Prediction Data", cfg.Report.SheetName)
	assert.True(t, cfg.Report.OpenFile)
	assert.Equal(t, 30*time.Second, cfg.Report.OpenTimeout)
	assert.Empty(t, cfg.Report.HTMLPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SALESFORECAST_LOG_LEVEL", "debug")
	t.Setenv("SALESFORECAST_LOG_FORMAT", "json")
	t.Setenv("SALESFORECAST_FORECAST_SPLINE_BOUNDARY", "natural")
	t.Setenv("SALESFORECAST_FORECAST_BAND_WIDTH", "1.5")
	t.Setenv("SALESFORECAST_REPORT_FORMULA_ROW", "30")
	t.Setenv("SALESFORECAST_REPORT_OPEN_FILE", "false")
	t.Setenv("SALESFORECAST_REPORT_OPEN_TIMEOUT", "5s")
	t.Setenv("SALESFORECAST_REPORT_HTML_PATH", "/tmp/report.html")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "natural", cfg.Forecast.SplineBoundary)
	assert.Equal(t, 1.5, cfg.Forecast.BandWidth)
	assert.Equal(t, 30, cfg.Report.FormulaRow)
	assert.False(t, cfg.Report.OpenFile)
	assert.Equal(t, 5*time.Second, cfg.Report.OpenTimeout)
	assert.Equal(t, "/tmp/report.html", cfg.Report.HTMLPath)
}

func TestLoadInvalid(t *testing.T) {
	testData := map[string]struct {
		key   string
		value string
		field string
	}{
		"log level":   {"SALESFORECAST_LOG_LEVEL", "verbose", "Level"},
		"log format":  {"SALESFORECAST_LOG_FORMAT", "xml", "Format"},
		"boundary":    {"SALESFORECAST_FORECAST_SPLINE_BOUNDARY", "clamped", "SplineBoundary"},
		"band width":  {"SALESFORECAST_FORECAST_BAND_WIDTH", "0", "BandWidth"},
		"formula row": {"SALESFORECAST_REPORT_FORMULA_ROW", "0", "FormulaRow"},
		"sheet name":  {"SALESFORECAST_REPORT_SHEET_NAME", "a sheet name that is far too long", "SheetName"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			t.Setenv(td.key, td.value)

			_, err := Load()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, td.field, verrs[0].Field())
		})
	}
}

func TestLoadUnparseable(t *testing.T) {
	t.Setenv("SALESFORECAST_REPORT_FORMULA_ROW", "sixteen")
	_, err := Load()
	assert.ErrorContains(t, err, "failed to load config from env")
}
