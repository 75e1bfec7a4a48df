// Package logging builds the zerolog logger shared by the CLI and the
// sampling experiments.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dcntopo/config"
)

// FormatJSON and FormatConsole are the accepted LogConfig.Format values.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns a logger writing to w (os.Stderr when nil) at cfg.Level.
// Console output is human-readable; json emits one object per event with a
// millisecond Unix timestamp.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(cfg.Level); err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
	}

	switch cfg.Format {
	case FormatJSON:
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !terminal(w)}
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// terminal reports whether w is an interactive terminal.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
}
