package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/jylitalo/tint"
	"github.com/mattn/go-isatty"
)

var logLevel = new(slog.LevelVar)

// NewLogger returns tint logger, which writes into f.
// Colors are used only when f is a terminal. Level follows `--log-level`.
func NewLogger(f *os.File) *slog.Logger {
	return slog.New(tint.NewHandler(f, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(f.Fd()),
	}))
}
