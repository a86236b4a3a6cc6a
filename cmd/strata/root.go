package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/strata/rules"
)

// set via -ldflags "-X main.version=..."
var version = "dev"

var (
	cfgFile   string
	rulesFile string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Classify document lines and extract a table of contents",
	Long: `Strata classifies the structural role of document lines (title, heading
levels, body text, noise) from layout and typographic signals, and
assembles the headings into a table of contents.

Input is a JSON array of line records as produced by an upstream document
parser: text, font size, boldness, bounding box, page number, and page
dimensions per line. See the source package documentation for the exact
shape.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./strata.yaml or ~/.strata/strata.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rulesFile, "rules", "", "YAML rule table and threshold overrides",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "warn", "log level: debug, info, warn, error",
	)

	viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.SetVersionTemplate("strata {{.Version}}\n")
}

// initConfig wires viper: optional config file, STRATA_-prefixed
// environment variables, and the bound persistent flags.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("strata")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.strata")
	}

	viper.SetEnvPrefix("STRATA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// newLogger builds the CLI logger from the resolved log level.
func newLogger() *slog.Logger {
	var level slog.Level
	switch viper.GetString("log-level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// buildEngine returns the rule engine: the built-in table, or the one
// described by the resolved rules file.
func buildEngine() (*rules.Engine, error) {
	path := viper.GetString("rules")
	if path == "" {
		return rules.NewEngine(), nil
	}
	f, err := rules.Load(path)
	if err != nil {
		return nil, err
	}
	return f.Engine(), nil
}
