package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sheetpick/sheetpick/pkg/commands/run"
	"github.com/sheetpick/sheetpick/pkg/config"
	"github.com/sheetpick/sheetpick/pkg/lockfile"
	"github.com/sheetpick/sheetpick/pkg/paths"
)

func newRunCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:     "run <sheet> <source-dir> <output-dir>",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		Args:    cobra.ExactArgs(3),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			outputDir, err := paths.NormalizePath(args[2])
			if err != nil {
				return err
			}
			reportPath := paths.ReportPath(outputDir, cfg.Report.Path)

			// One run at a time per report; a held lock is a fatal
			// setup error, not a per-row failure.
			lock, err := lockfile.Acquire(paths.LockPath(reportPath))
			if err != nil {
				return err
			}
			defer lock.Release()

			log.Info().
				Str("sheet", args[0]).
				Str("source", args[1]).
				Str("output", args[2]).
				Bool("dryRun", dryRun).
				Msg("Run requested")

			result, err := run.Run(run.Options{
				SheetPath: args[0],
				SourceDir: args[1],
				OutputDir: args[2],
				Config:    cfg,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			return renderRun(cmd, cfg.Output.Format, result)
		},
	}

	cmd.Flags().StringP("column", "c", defaults.Input.Column, MsgFlagColumn)
	cmd.Flags().String("sheet", defaults.Input.Sheet, MsgFlagSheet)
	cmd.Flags().Bool("no-header", defaults.Input.NoHeader, MsgFlagNoHeader)
	cmd.Flags().Bool("ignore-case", defaults.Match.IgnoreCase, MsgFlagIgnoreCase)
	cmd.Flags().Bool("ignore-extension", defaults.Match.IgnoreExtension, MsgFlagIgnoreExtension)
	cmd.Flags().String("ambiguous", defaults.Match.Ambiguous, MsgFlagAmbiguous)
	cmd.Flags().BoolP("recursive", "r", defaults.Scan.Recursive, MsgFlagRecursive)
	cmd.Flags().StringSlice("exclude", defaults.Scan.Exclude, MsgFlagExclude)
	cmd.Flags().Bool("overwrite", defaults.Copy.Overwrite, MsgFlagOverwrite)
	cmd.Flags().String("report", defaults.Report.Path, MsgFlagReport)
	cmd.Flags().StringP("output", "o", defaults.Output.Format, MsgFlagOutput)

	return cmd
}
