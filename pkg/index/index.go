// Package index builds the source file index: a mapping from the
// normalized name key to every file carrying that name. The indexer
// and the matcher share pkg/normalize, which is what makes a lookup
// meaningful.
package index

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/normalize"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// ScanOptions controls one source scan.
type ScanOptions struct {
	// Recursive descends into subdirectories; otherwise only direct
	// children of the root are considered.
	Recursive bool

	// Exclude holds glob patterns matched against base names. Matching
	// directories are pruned, matching files skipped.
	Exclude []string

	// PruneDirs are absolute directory paths cut out of the walk, used
	// to keep a nested output directory from feeding the index.
	PruneDirs []string

	// Normalize sets the key folding, shared with the matcher.
	Normalize normalize.Options
}

// Index is the result of a scan: candidates grouped by key.
type Index struct {
	root  string
	byKey map[string][]types.Candidate
	stats types.ScanStats
}

// Group is one key and its candidates, used by duplicate reporting.
type Group struct {
	Key        string            `json:"key"`
	Candidates []types.Candidate `json:"candidates"`
}

// Indexer scans a source tree through an injected filesystem.
type Indexer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an Indexer reading through the given filesystem.
func New(fs types.FS) *Indexer {
	return &Indexer{
		fs:     fs,
		logger: logging.GetLogger("index"),
	}
}

// Scan walks root and builds the index. The root being missing or
// unreadable is fatal; individual unreadable entries are counted and
// skipped.
func (ix *Indexer) Scan(root string, opts ScanOptions) (*Index, error) {
	start := time.Now()

	info, err := ix.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceAccess,
			"source directory %s not readable", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceAccess,
			"source path %s is not a directory", root)
	}

	idx := &Index{
		root:  root,
		byKey: make(map[string][]types.Candidate),
	}

	if opts.Recursive {
		err = ix.walk(root, opts, idx)
	} else {
		err = ix.readDir(root, opts, idx)
	}
	if err != nil {
		return nil, err
	}

	// Candidate order inside a key is part of the contract: suffix
	// assignment downstream follows it.
	for _, candidates := range idx.byKey {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].RelPath < candidates[j].RelPath
		})
	}

	idx.stats.DistinctKeys = len(idx.byKey)
	idx.stats.Duration = time.Since(start)

	ix.logger.Info().
		Str("root", root).
		Int("files", idx.stats.FilesIndexed).
		Int("keys", idx.stats.DistinctKeys).
		Int("skipped", idx.stats.EntriesSkipped).
		Dur("duration", idx.stats.Duration).
		Msg("Source scan complete")

	return idx, nil
}

func (ix *Indexer) walk(root string, opts ScanOptions, idx *Index) error {
	return ix.fs.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			idx.stats.EntriesSkipped++
			ix.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path == root {
				return nil
			}
			if matchesAny(opts.Exclude, info.Name()) || isPruned(opts.PruneDirs, path) {
				ix.logger.Debug().Str("path", path).Msg("Pruning directory")
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(opts.Exclude, info.Name()) {
			idx.stats.EntriesSkipped++
			return nil
		}

		if !info.Mode().IsRegular() {
			idx.stats.EntriesSkipped++
			ix.logger.Debug().Str("path", path).Msg("Skipping non-regular file")
			return nil
		}

		idx.add(path, opts.Normalize)
		return nil
	})
}

func (ix *Indexer) readDir(root string, opts ScanOptions, idx *Index) error {
	entries, err := ix.fs.ReadDir(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceAccess,
			"source directory %s not readable", root)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(opts.Exclude, entry.Name()) {
			idx.stats.EntriesSkipped++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			idx.stats.EntriesSkipped++
			ix.logger.Warn().Err(err).Str("name", entry.Name()).Msg("Skipping unreadable entry")
			continue
		}
		if !info.Mode().IsRegular() {
			idx.stats.EntriesSkipped++
			continue
		}

		idx.add(filepath.Join(root, entry.Name()), opts.Normalize)
	}

	return nil
}

func (idx *Index) add(path string, opts normalize.Options) {
	base := filepath.Base(path)

	rel, err := filepath.Rel(idx.root, path)
	if err != nil {
		rel = base
	}

	candidate := types.Candidate{
		Path:    path,
		RelPath: filepath.ToSlash(rel),
		Base:    base,
		Ext:     filepath.Ext(base),
		Key:     normalize.Key(base, opts),
	}

	idx.byKey[candidate.Key] = append(idx.byKey[candidate.Key], candidate)
	idx.stats.FilesIndexed++
}

// Lookup returns the candidates indexed under key, in stable path order.
func (idx *Index) Lookup(key string) []types.Candidate {
	return idx.byKey[key]
}

// Root returns the scanned root directory.
func (idx *Index) Root() string {
	return idx.root
}

// Stats returns the scan statistics.
func (idx *Index) Stats() types.ScanStats {
	return idx.stats
}

// Keys returns all keys in sorted order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.byKey))
	for key := range idx.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DuplicateGroups returns the keys carrying more than one candidate,
// sorted by key.
func (idx *Index) DuplicateGroups() []Group {
	var groups []Group
	for key, candidates := range idx.byKey {
		if len(candidates) > 1 {
			groups = append(groups, Group{Key: key, Candidates: candidates})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func isPruned(pruneDirs []string, path string) bool {
	cleaned := filepath.Clean(path)
	for _, dir := range pruneDirs {
		if cleaned == filepath.Clean(dir) {
			return true
		}
	}
	return false
}
