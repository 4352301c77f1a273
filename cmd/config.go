package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jylitalo/md2html/pkg"
)

// loadConfig merges defaults, md2html.yaml, MD2HTML_* environment and flags.
// It returns the config file used, if any.
func loadConfig(cmd *cobra.Command) (pkg.Config, string, error) {
	v := viper.New()
	defaults := pkg.DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("toc.title", defaults.TOC.Title)
	v.SetDefault("toc.min_level", defaults.TOC.MinLevel)
	v.SetDefault("toc.max_level", defaults.TOC.MaxLevel)
	v.SetDefault("hard_wraps", defaults.HardWraps)
	v.SetDefault("unsafe", defaults.Unsafe)
	v.SetDefault("front_matter", defaults.FrontMatter)

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("md2html")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "md2html"))
		}
	}
	v.SetEnvPrefix("MD2HTML")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return pkg.Config{}, "", fmt.Errorf("loadConfig failed: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return pkg.Config{}, "", fmt.Errorf("loadConfig failed: %w", err)
		}
	}
	var cfg pkg.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return pkg.Config{}, "", fmt.Errorf("loadConfig failed: %w", err)
	}
	return cfg, v.ConfigFileUsed(), nil
}
