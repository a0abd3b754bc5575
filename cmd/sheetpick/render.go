package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetpick/sheetpick/pkg/commands/run"
	"github.com/sheetpick/sheetpick/pkg/commands/scan"
	"github.com/sheetpick/sheetpick/pkg/output"
)

// resolveFormat parses the configured format token and pins "auto" to a
// concrete format based on whether stdout is a terminal.
func resolveFormat(token string) (output.Format, error) {
	format, err := output.ParseFormat(token)
	if err != nil {
		return format, err
	}
	return output.Resolve(format, os.Stdout), nil
}

func renderRun(cmd *cobra.Command, token string, result *run.Result) error {
	format, err := resolveFormat(token)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		text, err := output.RenderJSON(result)
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	}

	cmd.Println(output.NewRenderer(format).RenderRunSummary(result.Summary))
	return nil
}

func renderScan(cmd *cobra.Command, token string, result *scan.Result) error {
	format, err := resolveFormat(token)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		text, err := output.RenderJSON(result)
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	}

	cmd.Println(output.NewRenderer(format).RenderScanSummary(result.Root, result.Stats, result.Groups))
	return nil
}
