package main

import (
	"github.com/spf13/cobra"

	"github.com/sheetpick/sheetpick/pkg/commands/scan"
	"github.com/sheetpick/sheetpick/pkg/config"
)

func newScanCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:     "scan <source-dir>",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := scan.Scan(scan.Options{
				SourceDir: args[0],
				Config:    cfg,
			})
			if err != nil {
				return err
			}

			return renderScan(cmd, cfg.Output.Format, result)
		},
	}

	cmd.Flags().BoolP("recursive", "r", defaults.Scan.Recursive, MsgFlagRecursive)
	cmd.Flags().StringSlice("exclude", defaults.Scan.Exclude, MsgFlagExclude)
	cmd.Flags().Bool("ignore-case", defaults.Match.IgnoreCase, MsgFlagIgnoreCase)
	cmd.Flags().Bool("ignore-extension", defaults.Match.IgnoreExtension, MsgFlagIgnoreExtension)
	cmd.Flags().StringP("output", "o", defaults.Output.Format, MsgFlagOutput)

	return cmd
}
