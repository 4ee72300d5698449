package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/mj1618/pcremote/internal/config"
	"github.com/mj1618/pcremote/internal/logging"
	"github.com/mj1618/pcremote/internal/output"
	"github.com/mj1618/pcremote/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pcremote",
	Short: "Execute remote-control commands received over a serial line",
	Long: `pcremote listens on a serial port for short text commands from a remote
controller board (PC_WAKE, VOLUME_SET:50, SMART_TV_MODE, ...) and turns each
into an OS effect: power, window placement or synthetic key presses aimed at
the first browser window it finds. Every command gets one STATUS: or ERROR:
line back.`,
	SilenceUsage: true,
}

// Loaded by the root PersistentPreRunE before any subcommand runs.
var (
	appConfig config.Config
	appLogger *log.Logger
)

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}

// Execute runs the root command through fang.
func Execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
	)
}

func init() {
	rootCmd.Version = versionString()
	rootCmd.PersistentFlags().String("config", "", "Config file (YAML or TOML); default searches the XDG config dirs")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, logfmt, json (overrides config)")
	rootCmd.PersistentFlags().String("format", "", "Output format for listings: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: piped output gets JSON, a terminal gets YAML.
		if format == "" {
			if output.IsOutputPiped() {
				format = string(output.FormatJSON)
			} else {
				format = string(output.FormatYAML)
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		return loadConfig()
	}
}

// loadConfig resolves the config file, applies flag overrides and builds
// the logger.
func loadConfig() error {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := rootCmd.PersistentFlags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.FromConfig(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	appConfig = cfg
	appLogger = logger
	appLogger.Debug("config loaded", "source", cfg.Source)
	return nil
}
