// Package copier places matched files into the output directory and
// resolves name collisions.
//
// Names are claimed in a per-run set keyed by the folded output name,
// so two source files whose names collide under the active matching
// options always land under distinct names, whatever the output
// filesystem thinks about case. The overwrite option only governs
// collisions with files that existed before the run.
package copier

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/normalize"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Options controls collision handling.
type Options struct {
	// Overwrite replaces pre-existing output files instead of probing
	// for a free suffixed name.
	Overwrite bool

	// SkipAmbiguous skips copying for names that matched more than one
	// file, flagging the row for manual review.
	SkipAmbiguous bool

	// DryRun resolves names and reports outcomes without writing.
	DryRun bool

	// Normalize folds claimed names the same way matching folded keys.
	Normalize normalize.Options
}

// Copier copies candidates into one output directory.
type Copier struct {
	fs          types.FS
	logger      zerolog.Logger
	outDir      string
	opts        Options
	claimed     map[string]bool
	nextOrdinal map[string]int
}

// New creates a Copier and ensures the output directory exists. A
// directory that cannot be created is fatal before any copying starts.
// Dry runs create nothing.
func New(fs types.FS, outDir string, opts Options) (*Copier, error) {
	if !opts.DryRun {
		if err := fs.MkdirAll(outDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrOutputAccess,
				"cannot create output directory %s", outDir)
		}
	}

	return &Copier{
		fs:          fs,
		logger:      logging.GetLogger("copier"),
		outDir:      outDir,
		opts:        opts,
		claimed:     make(map[string]bool),
		nextOrdinal: make(map[string]int),
	}, nil
}

// Place copies the candidates of one match result, returning one
// outcome per copy attempt. Per-file failures are recorded, never
// propagated; nothing a single row does can abort the batch.
func (c *Copier) Place(result types.MatchResult) []types.CopyOutcome {
	if len(result.Candidates) == 0 {
		return nil
	}

	if result.Status == types.MatchAmbiguous && c.opts.SkipAmbiguous {
		return []types.CopyOutcome{{
			Status: types.CopySkipped,
			Detail: fmt.Sprintf("ambiguous (%d candidates)", len(result.Candidates)),
		}}
	}

	outcomes := make([]types.CopyOutcome, 0, len(result.Candidates))
	for _, candidate := range result.Candidates {
		outcomes = append(outcomes, c.copyOne(candidate))
	}
	return outcomes
}

func (c *Copier) copyOne(candidate types.Candidate) types.CopyOutcome {
	name, ordinal, existed := c.chooseName(candidate.Base)
	outPath := filepath.Join(c.outDir, name)

	outcome := types.CopyOutcome{
		Source:     candidate.Path,
		OutputPath: outPath,
	}

	switch {
	case name != candidate.Base:
		outcome.Status = types.CopyRenamed
		outcome.Detail = name
	case existed:
		outcome.Status = types.CopyOverwritten
	default:
		outcome.Status = types.CopyCopied
	}

	if c.opts.DryRun {
		c.claim(candidate.Base, name, ordinal)
		outcome.Status = types.CopySkipped
		outcome.Detail = "dry run"
		return outcome
	}

	if err := c.writeCopy(candidate.Path, outPath); err != nil {
		c.logger.Warn().Err(err).
			Str("source", candidate.Path).
			Str("target", outPath).
			Msg("Copy failed")
		return types.CopyOutcome{
			Source: candidate.Path,
			Status: types.CopyFailed,
			Detail: err.Error(),
		}
	}

	c.claim(candidate.Base, name, ordinal)

	c.logger.Debug().
		Str("source", candidate.Path).
		Str("target", outPath).
		Str("outcome", string(outcome.Status)).
		Msg("File placed")

	return outcome
}

// chooseName picks the output base name: the candidate's own name when
// free, otherwise the first free "name(n).ext". A name is free when no
// earlier placed copy claimed it and, unless overwriting, nothing on
// disk holds it.
func (c *Copier) chooseName(base string) (name string, ordinal int, existed bool) {
	folded := normalize.Fold(base, c.opts.Normalize)

	for n := c.nextOrdinal[folded]; ; n++ {
		probe := suffixed(base, n)
		if c.claimed[normalize.Fold(probe, c.opts.Normalize)] {
			continue
		}

		exists := c.onDisk(filepath.Join(c.outDir, probe))
		if exists && !c.opts.Overwrite {
			continue
		}

		return probe, n, exists
	}
}

// claim records a placed name. Failed copies never claim: writeCopy
// removes whatever it half-wrote, so the name is free for the next
// candidate.
func (c *Copier) claim(base, name string, ordinal int) {
	c.claimed[normalize.Fold(name, c.opts.Normalize)] = true
	c.nextOrdinal[normalize.Fold(base, c.opts.Normalize)] = ordinal + 1
}

func (c *Copier) onDisk(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}

// writeCopy streams the source file to the target, preserving the
// source's permission bits.
func (c *Copier) writeCopy(srcPath, dstPath string) error {
	info, err := c.fs.Stat(srcPath)
	if err != nil {
		return err
	}

	src, err := c.fs.Open(srcPath)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	perm := info.Mode().Perm()
	dst, err := c.fs.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = c.fs.Remove(dstPath)
		return err
	}
	if err := dst.Close(); err != nil {
		_ = c.fs.Remove(dstPath)
		return err
	}

	// O_CREATE honors the umask; the copy should carry the source bits
	return c.fs.Chmod(dstPath, perm)
}

// suffixed inserts the ordinal before the extension: report(1).pdf.
// Ordinal zero is the name itself.
func suffixed(base string, n int) string {
	if n == 0 {
		return base
	}
	stem := normalize.StripExt(base)
	ext := strings.TrimPrefix(base, stem)
	return fmt.Sprintf("%s(%d)%s", stem, n, ext)
}
