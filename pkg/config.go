package pkg

import (
	"fmt"
	"log/slog"
	"strings"
)

// TOCConfig is the `toc` section of md2html.yaml.
type TOCConfig struct {
	Title    string `mapstructure:"title" yaml:"title"`
	MinLevel int    `mapstructure:"min_level" yaml:"min_level"`
	MaxLevel int    `mapstructure:"max_level" yaml:"max_level"`
}

// Config holds the settings read from md2html.yaml and MD2HTML_* environment variables.
// Autolinking and table of contents generation are always on and not part of it.
type Config struct {
	LogLevel    string    `mapstructure:"log_level" yaml:"log_level"`
	TOC         TOCConfig `mapstructure:"toc" yaml:"toc"`
	HardWraps   bool      `mapstructure:"hard_wraps" yaml:"hard_wraps"`
	Unsafe      bool      `mapstructure:"unsafe" yaml:"unsafe"`
	FrontMatter bool      `mapstructure:"front_matter" yaml:"front_matter"`
}

// DefaultConfig matches DefaultOptions.
func DefaultConfig() Config {
	opts := DefaultOptions()
	return Config{
		LogLevel: "info",
		TOC: TOCConfig{
			Title:    opts.TOC.Title,
			MinLevel: opts.TOC.MinLevel,
			MaxLevel: opts.TOC.MaxLevel,
		},
		HardWraps:   opts.HardWraps,
		Unsafe:      opts.Unsafe,
		FrontMatter: opts.FrontMatter,
	}
}

// Options turns the config into renderer options.
func (c Config) Options() Options {
	opts := DefaultOptions()
	opts.TOC = TOCOptions{Title: c.TOC.Title, MinLevel: c.TOC.MinLevel, MaxLevel: c.TOC.MaxLevel}
	opts.HardWraps = c.HardWraps
	opts.Unsafe = c.Unsafe
	opts.FrontMatter = c.FrontMatter
	return opts
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
