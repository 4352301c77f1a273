package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/jylitalo/md2html/pkg"
)

// NewCommand returns root level command.
// Supports `--version`, `--config`, `--show-config` and `--log-level`.
// Default is to convert README.md into README.html in current directory.
func NewCommand(writer io.WriteCloser, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "md2html",
		Short:         "Convert README.md into README.html",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// parse flags
			if flag, _ := cmd.Flags().GetBool("version"); flag {
				_, _ = writer.Write([]byte(fmt.Sprintf("md2html %s\n", version)))
				return nil
			}
			cfg, cfgFile, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logLevel.Set(level)
			if cfgFile != "" {
				slog.Debug("using config file", "path", cfgFile)
			}
			if flag, _ := cmd.Flags().GetBool("show-config"); flag {
				out, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("show-config failed: %w", err)
				}
				_, err = writer.Write(out)
				return err
			}
			// execute
			return pkg.Convert(pkg.DefaultSource, pkg.DefaultDestination, cfg.Options())
		},
	}
	cmd.Flags().String("config", "", "config file (default: ./md2html.yaml or ~/.config/md2html/md2html.yaml)")
	cmd.Flags().String("log-level", pkg.DefaultConfig().LogLevel, "log level: debug, info, warn or error")
	cmd.Flags().Bool("show-config", false, "print effective configuration and exit")
	cmd.Flags().BoolP("version", "v", false, "print md2html version")
	return cmd
}
