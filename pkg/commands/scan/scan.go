// Package scan previews the source index without copying anything:
// it walks the source tree with the active matching options and
// reports what was found, in particular the names that several files
// share and would therefore come out ambiguous in a run.
package scan

import (
	"github.com/sheetpick/sheetpick/pkg/config"
	"github.com/sheetpick/sheetpick/pkg/filesystem"
	"github.com/sheetpick/sheetpick/pkg/index"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/paths"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Options configures one scan preview.
type Options struct {
	// SourceDir is the tree to index.
	SourceDir string

	// Config carries the resolved option set; nil means defaults.
	Config *config.Config

	// FS overrides the host filesystem, for tests.
	FS types.FS
}

// Result is a completed scan preview.
type Result struct {
	Root   string          `json:"root"`
	Stats  types.ScanStats `json:"stats"`
	Groups []index.Group   `json:"duplicateGroups,omitempty"`
}

// Scan indexes the source directory and returns the statistics plus
// the duplicate name groups under the configured folding.
func Scan(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.scan")
	defer logging.LogOperationStart(logger, "scan")()

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	sourceDir, err := paths.NormalizePath(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	idx, err := index.New(fs).Scan(sourceDir, index.ScanOptions{
		Recursive: cfg.Scan.Recursive,
		Exclude:   cfg.Scan.Exclude,
		Normalize: cfg.NormalizeOptions(),
	})
	if err != nil {
		return nil, err
	}

	groups := idx.DuplicateGroups()

	logger.Info().
		Str("root", sourceDir).
		Int("files", idx.Stats().FilesIndexed).
		Int("duplicateGroups", len(groups)).
		Msg("Scan preview complete")

	return &Result{
		Root:   idx.Root(),
		Stats:  idx.Stats(),
		Groups: groups,
	}, nil
}
