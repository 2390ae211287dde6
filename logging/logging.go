// Package logging builds the slog logger used by the command line tool. The writer and output
// encoding are passed in explicitly so nothing global is touched here.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aouyang1/go-salesforecaster/config"
	"golang.org/x/text/encoding/htmlindex"
)

var ErrUnknownEncoding = errors.New("unknown output encoding")

// New creates a text or JSON slog logger writing to w through the configured character encoding
func New(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	out, err := EncodedWriter(w, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), nil
}

// EncodedWriter wraps w so that UTF-8 text written to it is transcoded into the named encoding.
// Labels follow the WHATWG encoding standard, e.g. utf-8, windows-1252, iso-8859-2.
func EncodedWriter(w io.Writer, name string) (io.Writer, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return w, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownEncoding)
	}
	return enc.NewEncoder().Writer(w), nil
}

// ParseLevel converts string log level to slog.Level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
