// Package run drives the full pipeline: read names from the sheet,
// scan the source tree, match, copy, and write the CSV report.
//
// Fatal setup errors (unreadable sheet, missing column, missing source
// directory, uncreatable output) abort before any file is placed.
// Per-file copy failures are downgraded to report rows; a run that
// completes always exits cleanly, whatever the rows say.
package run

import (
	"time"

	"github.com/google/uuid"
	"github.com/sheetpick/sheetpick/pkg/config"
	"github.com/sheetpick/sheetpick/pkg/copier"
	"github.com/sheetpick/sheetpick/pkg/filesystem"
	"github.com/sheetpick/sheetpick/pkg/index"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/match"
	"github.com/sheetpick/sheetpick/pkg/namesource"
	"github.com/sheetpick/sheetpick/pkg/paths"
	"github.com/sheetpick/sheetpick/pkg/report"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Options configures one run.
type Options struct {
	// SheetPath is the spreadsheet holding the target names.
	SheetPath string

	// SourceDir is the tree searched for matching files.
	SourceDir string

	// OutputDir receives the copies and, by default, the report.
	OutputDir string

	// Config carries the resolved option set; nil means defaults.
	Config *config.Config

	// DryRun resolves and reports without writing any copies.
	DryRun bool

	// FS overrides the host filesystem, for tests.
	FS types.FS
}

// Result is a completed run.
type Result struct {
	Summary types.Summary `json:"summary"`
}

// Run executes the pipeline and returns the run summary. The returned
// error is always a fatal setup problem; per-row trouble lives in the
// report and the summary counters.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.run")
	defer logging.LogOperationStart(logger, "run")()

	start := time.Now()

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	sheetPath, err := paths.NormalizePath(opts.SheetPath)
	if err != nil {
		return nil, err
	}
	sourceDir, err := paths.NormalizePath(opts.SourceDir)
	if err != nil {
		return nil, err
	}
	outputDir, err := paths.NormalizePath(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	reportPath := paths.ReportPath(outputDir, cfg.Report.Path)

	logger.Info().
		Str("sheet", sheetPath).
		Str("source", sourceDir).
		Str("output", outputDir).
		Bool("dryRun", opts.DryRun).
		Msg("Starting run")

	targets, err := namesource.New(fs).Read(sheetPath, namesource.Options{
		Column:   cfg.Input.Column,
		Sheet:    cfg.Input.Sheet,
		NoHeader: cfg.Input.NoHeader,
	})
	if err != nil {
		return nil, err
	}

	normOpts := cfg.NormalizeOptions()
	idx, err := index.New(fs).Scan(sourceDir, index.ScanOptions{
		Recursive: cfg.Scan.Recursive,
		Exclude:   cfg.Scan.Exclude,
		PruneDirs: []string{outputDir},
		Normalize: normOpts,
	})
	if err != nil {
		return nil, err
	}

	results := match.Resolve(targets, idx, match.Options{Normalize: normOpts})

	cp, err := copier.New(fs, outputDir, copier.Options{
		Overwrite:     cfg.Copy.Overwrite,
		SkipAmbiguous: cfg.Match.Ambiguous == config.AmbiguousSkip,
		DryRun:        opts.DryRun,
		Normalize:     normOpts,
	})
	if err != nil {
		return nil, err
	}

	writer, err := report.New(fs, reportPath)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		rec := types.RowRecord{Match: res, Outcomes: cp.Place(res)}
		if err := writer.Record(rec); err != nil {
			_ = writer.Close()
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	summary := writer.Summary()
	summary.RunID = uuid.New().String()
	summary.Command = "run"
	summary.DryRun = opts.DryRun
	summary.Timestamp = start
	summary.Scan = idx.Stats()
	summary.OutputDir = outputDir
	summary.Duration = time.Since(start)

	logger.Info().
		Str("runId", summary.RunID).
		Int("targets", summary.Targets).
		Int("matched", summary.Matched()).
		Int("placed", summary.Placed()).
		Int("notFound", summary.NotFound).
		Int("failed", summary.Failed).
		Msg("Run completed")

	return &Result{Summary: summary}, nil
}
