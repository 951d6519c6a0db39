package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/kwfinder/internal/config"
	"github.com/muurk/kwfinder/internal/ui"
)

var forceOverwrite bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&forceOverwrite, "force", false, "Overwrite an existing settings file without asking")
}

// configCmd groups the settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	// Replaces the root hook: these commands must work with a broken file
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

// settingsPath returns --config or the default location
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd, args); err != nil {
			return err
		}
		data, err := settings.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default templates",
	Long: `Write a settings file listing the built-in suggestion templates,
ready to be edited. An existing file is only replaced after confirmation
or with --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := settingsPath()
		if err != nil {
			return err
		}

		overwrite := forceOverwrite
		if _, err := os.Stat(path); err == nil && !overwrite {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("settings file already exists: %s (use --force to replace it)", path)
			}
			overwrite = ui.Confirm(os.Stdin, out, "SETTINGS FILE EXISTS", []string{
				path,
				"Custom templates and settings in this file will be lost",
			}, "Replace it with the defaults?")
			if !overwrite {
				return nil
			}
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check settings file: %w", err)
		}

		written, err := config.CreateDefaultConfig(path, overwrite)
		if err != nil {
			return err
		}

		ui.PrintSuccess(out, "Settings file written", []ui.Detail{
			{Key: "Path", Value: written},
			{Key: "Templates", Value: fmt.Sprintf("%d", len(config.DefaultTemplateSpecs()))},
		})
		return nil
	},
}
