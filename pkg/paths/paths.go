// Package paths provides centralized path handling for sheetpick.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sheetpick/sheetpick/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for sheetpick
	EnvConfigDir = "SHEETPICK_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for sheetpick-specific files
	AppDirName = "sheetpick"

	// LocalConfigFile is the per-directory configuration file name
	LocalConfigFile = ".sheetpick.toml"

	// XDGConfigFile is the configuration file name under the XDG config dir
	XDGConfigFile = "config.toml"

	// DefaultReportName is the report file written into the output directory
	DefaultReportName = "sheetpick-report.csv"

	// LockFileName is the advisory run lock written beside the report
	LockFileName = ".sheetpick.lock"

	// LogFileName is the name of the log file
	LogFileName = "sheetpick.log"
)

// ConfigDir returns the XDG config directory for sheetpick,
// respecting the SHEETPICK_CONFIG_DIR override.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigSearchPaths returns the candidate config file locations in
// priority order: the working directory's .sheetpick.toml first, then
// the XDG config dir. The loader uses the first one that exists.
func ConfigSearchPaths(cwd string) []string {
	return []string{
		filepath.Join(cwd, LocalConfigFile),
		filepath.Join(ConfigDir(), XDGConfigFile),
	}
}

// StateDir returns the directory for state files such as the log.
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state.
func StateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return AppDirName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, AppDirName)
}

// ReportPath resolves the report file location: an explicit override
// wins, otherwise the default name inside the output directory.
func ReportPath(outputDir, override string) string {
	if override != "" {
		return ExpandHome(override)
	}
	return filepath.Join(outputDir, DefaultReportName)
}

// LockPath returns the advisory lock location for a given report file.
// The lock sits beside the report so two runs against the same output
// contend on the same path.
func LockPath(reportPath string) string {
	return filepath.Join(filepath.Dir(reportPath), LockFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	// Expand home directory
	expanded := ExpandHome(path)

	// Make absolute
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path")
	}

	// Clean the path
	return filepath.Clean(abs), nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
