// Package genconfig emits configuration files: a commented starter
// .sheetpick.toml by default, or the fully resolved effective
// configuration for debugging option precedence.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/sheetpick/sheetpick/pkg/config"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/filesystem"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/paths"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Options selects what to emit and where.
type Options struct {
	// Write saves the content as .sheetpick.toml in the working
	// directory instead of only returning it.
	Write bool

	// Effective renders the resolved configuration (defaults, file,
	// environment) instead of the commented starter.
	Effective bool

	// WorkingDir anchors the config search and the write target; empty
	// means the process working directory.
	WorkingDir string

	// ConfigFile is an explicit config path for the effective view.
	ConfigFile string

	// FS overrides the host filesystem, for tests.
	FS types.FS
}

// Result carries the emitted content and what happened to it.
type Result struct {
	// Content is the generated TOML.
	Content string `json:"content"`

	// Path is the write target, set only when writing was requested.
	Path string `json:"path,omitempty"`

	// Written reports whether the file was created.
	Written bool `json:"written"`

	// Skipped reports that an existing file was left untouched.
	Skipped bool `json:"skipped,omitempty"`
}

// Generate produces the requested configuration content and, when
// asked, writes it to the working directory. An existing file is never
// overwritten.
func Generate(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	var content string
	if opts.Effective {
		cfg, err := config.Load(config.LoadOptions{
			ConfigFile: opts.ConfigFile,
			WorkingDir: opts.WorkingDir,
		})
		if err != nil {
			return nil, err
		}
		content, err = config.EffectiveTOML(cfg)
		if err != nil {
			return nil, err
		}
	} else {
		content = config.GenerateConfigContent()
	}

	result := &Result{Content: content}
	if !opts.Write {
		logger.Debug().Bool("effective", opts.Effective).Msg("Outputting config")
		return result, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal,
				"cannot resolve working directory")
		}
		dir = wd
	}
	result.Path = filepath.Join(dir, paths.LocalConfigFile)

	if _, err := fs.Stat(result.Path); err == nil {
		logger.Warn().Str("path", result.Path).Msg("Config file already exists, skipping")
		result.Skipped = true
		return result, nil
	}

	if err := fs.WriteFile(result.Path, []byte(content), 0o644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputAccess,
			"cannot write config file %s", result.Path)
	}
	result.Written = true

	logger.Info().Str("path", result.Path).Msg("Config file written")
	return result, nil
}
