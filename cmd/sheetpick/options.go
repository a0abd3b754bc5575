package main

import (
	"github.com/spf13/cobra"

	"github.com/sheetpick/sheetpick/pkg/config"
)

// loadConfig resolves the effective configuration for a command: the
// config chain first, then any flags the user set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: cfgFile})
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly set flags into the config.
// Changed reports false for flags a command does not define, so run and
// scan can share this even though scan carries only a subset.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("column") {
		cfg.Input.Column, _ = flags.GetString("column")
	}
	if flags.Changed("sheet") {
		cfg.Input.Sheet, _ = flags.GetString("sheet")
	}
	if flags.Changed("no-header") {
		cfg.Input.NoHeader, _ = flags.GetBool("no-header")
	}
	if flags.Changed("ignore-case") {
		cfg.Match.IgnoreCase, _ = flags.GetBool("ignore-case")
	}
	if flags.Changed("ignore-extension") {
		cfg.Match.IgnoreExtension, _ = flags.GetBool("ignore-extension")
	}
	if flags.Changed("ambiguous") {
		cfg.Match.Ambiguous, _ = flags.GetString("ambiguous")
	}
	if flags.Changed("recursive") {
		cfg.Scan.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("exclude") {
		cfg.Scan.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("overwrite") {
		cfg.Copy.Overwrite, _ = flags.GetBool("overwrite")
	}
	if flags.Changed("report") {
		cfg.Report.Path, _ = flags.GetString("report")
	}
	if flags.Changed("output") {
		cfg.Output.Format, _ = flags.GetString("output")
	}
}
