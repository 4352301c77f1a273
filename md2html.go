package main

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"github.com/jylitalo/md2html/cmd"
)

//go:embed version.txt
var Version string

func main() {
	slog.SetDefault(cmd.NewLogger(os.Stderr))
	if err := cmd.NewCommand(os.Stdout, strings.TrimSpace(Version)).Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
