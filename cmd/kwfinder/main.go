// Kwfinder is a keyword research wizard.
//
// It collects two seed keywords, looks up related keyword suggestions with
// their search volume and competition, and lets the user review and confirm
// the Primary and Secondary keywords for a campaign.
//
// Usage:
//
//	kwfinder [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'kwfinder --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/kwfinder/internal/config"
	"github.com/muurk/kwfinder/internal/keyword"
	"github.com/muurk/kwfinder/internal/logging"
	"github.com/muurk/kwfinder/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath      string
	latency         time.Duration
	simulateFailure bool
	logLevel        string
)

// settings holds the effective configuration after flags are applied
var settings *config.Settings

// errSimulatedFailure is returned by the provider under --simulate-failure
var errSimulatedFailure = errors.New("simulated provider outage")

var rootCmd = &cobra.Command{
	Use:   "kwfinder",
	Short: "KeywordFinder Pro keyword research wizard",
	Long: `Find keyword suggestions for a campaign from two seed keywords.

The wizard walks through four steps: enter seeds, fetch suggestions,
review the results and confirm the Primary and Secondary keywords.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is the per-user config directory)")
	rootCmd.PersistentFlags().DurationVar(&latency, "latency", 0, "Simulated lookup delay, e.g. 500ms (overrides the settings file)")
	rootCmd.PersistentFlags().BoolVar(&simulateFailure, "simulate-failure", false, "Make every lookup fail, to exercise the error path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+")")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the settings file, applies flag overrides and starts
// logging. The log level comes from --log-level, then $KWFINDER_LOG_LEVEL,
// then the settings file.
func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("latency") {
		s.Provider.LatencyMS = int(latency / time.Millisecond)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	level := s.Logging.Level
	if env := os.Getenv(logging.LogLevelEnvVar); env != "" {
		level = env
	}
	if logLevel != "" {
		level = logLevel
	}
	if err := logging.Initialize(logging.Options{Level: level, File: s.Logging.File}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	settings = s
	return nil
}

// newProvider builds the suggestion provider from the effective settings
func newProvider() (*keyword.MockProvider, error) {
	p, err := settings.NewProvider()
	if err != nil {
		return nil, err
	}
	if simulateFailure {
		p.Err = errSimulatedFailure
	}
	return p, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Needs no settings
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kwfinder %s\n", version.Full())
	},
}
