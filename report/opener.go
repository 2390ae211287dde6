package report

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

var ErrNoOpenCommand = errors.New("no file open command for platform")

// Opener hands a generated file to an external viewer
type Opener interface {
	Open(ctx context.Context, path string) error
}

// OpenerFunc adapts a function into an Opener
type OpenerFunc func(ctx context.Context, path string) error

func (f OpenerFunc) Open(ctx context.Context, path string) error {
	return f(ctx, path)
}

// NopOpener never opens anything
type NopOpener struct{}

func (NopOpener) Open(context.Context, string) error {
	return nil
}

// SystemOpener opens files with the platform default application: start on Windows, open on
// macOS and xdg-open elsewhere.
type SystemOpener struct {
	GOOS string
}

// NewSystemOpener returns an opener for the running platform
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{GOOS: runtime.GOOS}
}

// Command returns the program and arguments used to open path
func (s *SystemOpener) Command(path string) (string, []string, error) {
	switch s.GOOS {
	case "windows":
		// the empty argument is the window title consumed by start
		return "cmd", []string{"/c", "start", "", path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("%s, %w", s.GOOS, ErrNoOpenCommand)
	}
}

func (s *SystemOpener) Open(ctx context.Context, path string) error {
	name, args, err := s.Command(path)
	if err != nil {
		return err
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed with output %q, %w", name, out, err)
	}
	return nil
}
