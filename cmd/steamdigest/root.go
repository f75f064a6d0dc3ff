package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "steamdigest",
	Short: "Daily Steam playtime digest bot",
	Long: `steamdigest compares today's Steam activity against yesterday's snapshot
and posts a group digest to a Discord webhook.`,
	SilenceUsage: true,
	RunE:         runDigest,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs instead of console output")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if logJSON {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
