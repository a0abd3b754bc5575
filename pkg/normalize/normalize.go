// Package normalize holds the filename normalization shared by the
// indexer and the matcher. Both sides of a lookup must go through the
// same Key function or matching silently breaks.
package normalize

import (
	"path/filepath"
	"strings"
)

// Options controls how names are folded into lookup keys.
type Options struct {
	IgnoreCase      bool
	IgnoreExtension bool
}

// zero-width characters that spreadsheet exports smuggle into cells
const zeroWidth = "\u200B\u200C\u200D\uFEFF"

// CleanCell strips zero-width characters and surrounding whitespace
// from a spreadsheet cell.
func CleanCell(s string) string {
	if strings.ContainsAny(s, zeroWidth) {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(zeroWidth, r) {
				return -1
			}
			return r
		}, s)
	}
	return strings.TrimSpace(s)
}

// Key folds a filename into its lookup key. The same function indexes
// candidates and normalizes target names.
func Key(name string, opts Options) string {
	key := strings.TrimSpace(name)

	if opts.IgnoreExtension {
		key = StripExt(key)
	}

	if opts.IgnoreCase {
		key = strings.ToLower(key)
	}

	return key
}

// StripExt removes the final extension from a base name. Names without
// an extension and dotfiles like ".profile" come back unchanged, and a
// multi-dot name loses only its last segment.
func StripExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// Fold case-folds an output name when ignoreCase is set. The copier
// keys its claimed-name set with it so two names collide exactly when
// matching treats them as the same.
func Fold(name string, opts Options) string {
	if opts.IgnoreCase {
		return strings.ToLower(name)
	}
	return name
}

// HeaderEqual compares two header cells ignoring case, zero-width
// characters, and all whitespace, so "File Name" and "filename" refer
// to the same column.
func HeaderEqual(a, b string) bool {
	return HeaderKey(a) == HeaderKey(b)
}

// HeaderKey folds a header cell for comparison.
func HeaderKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(CleanCell(s)), ""))
}
