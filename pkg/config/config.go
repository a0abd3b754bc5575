package config

import (
	"strings"

	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/normalize"
)

// Ambiguity policies for names that match more than one file.
const (
	// AmbiguousAll copies every candidate, each under a distinct name.
	AmbiguousAll = "all"

	// AmbiguousSkip copies nothing and flags the row for manual review.
	AmbiguousSkip = "skip"
)

// Input holds the sheet-reading configuration
type Input struct {
	// Column identifies the column holding file names: a header cell,
	// a spreadsheet letter ("A"), or a 1-based number.
	Column string `koanf:"column" toml:"column"`

	// Sheet is the worksheet name for .xlsx input; empty means first sheet.
	Sheet string `koanf:"sheet" toml:"sheet"`

	// NoHeader marks sheets without a header row. Column must then be a
	// letter or number.
	NoHeader bool `koanf:"no_header" toml:"no_header"`
}

// Match holds the name comparison configuration
type Match struct {
	IgnoreCase      bool   `koanf:"ignore_case" toml:"ignore_case"`
	IgnoreExtension bool   `koanf:"ignore_extension" toml:"ignore_extension"`
	Ambiguous       string `koanf:"ambiguous" toml:"ambiguous"`
}

// Scan holds the source directory walk configuration
type Scan struct {
	Recursive bool     `koanf:"recursive" toml:"recursive"`
	Exclude   []string `koanf:"exclude" toml:"exclude"`
}

// Copy holds the output collision configuration
type Copy struct {
	Overwrite bool `koanf:"overwrite" toml:"overwrite"`
}

// Report holds the CSV report configuration
type Report struct {
	// Path overrides the report location; empty means the default name
	// inside the output directory.
	Path string `koanf:"path" toml:"path"`
}

// Output holds the terminal output configuration
type Output struct {
	// Format is one of auto, term, text, json.
	Format string `koanf:"format" toml:"format"`
}

// Config is the main configuration structure
type Config struct {
	Input  Input  `koanf:"input" toml:"input"`
	Match  Match  `koanf:"match" toml:"match"`
	Scan   Scan   `koanf:"scan" toml:"scan"`
	Copy   Copy   `koanf:"copy" toml:"copy"`
	Report Report `koanf:"report" toml:"report"`
	Output Output `koanf:"output" toml:"output"`
}

// Default returns the default configuration as parsed from the
// embedded defaults file.
func Default() *Config {
	cfg, err := parseDefaults()
	if err != nil {
		// Fallback to a minimal config if the embedded file is broken
		return &Config{
			Input:  Input{Column: "A"},
			Match:  Match{IgnoreCase: true, Ambiguous: AmbiguousAll},
			Scan:   Scan{Recursive: true},
			Output: Output{Format: "auto"},
		}
	}
	return cfg
}

// NormalizeOptions derives the key-folding options from the match section.
func (c *Config) NormalizeOptions() normalize.Options {
	return normalize.Options{
		IgnoreCase:      c.Match.IgnoreCase,
		IgnoreExtension: c.Match.IgnoreExtension,
	}
}

// Validate checks option values that flags and files could have set to
// anything.
func (c *Config) Validate() error {
	switch c.Match.Ambiguous {
	case AmbiguousAll, AmbiguousSkip:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"invalid ambiguous policy %q (want %q or %q)",
			c.Match.Ambiguous, AmbiguousAll, AmbiguousSkip)
	}

	switch c.Output.Format {
	case "auto", "term", "text", "json":
	default:
		return errors.Newf(errors.ErrConfigParse,
			"invalid output format %q (want auto, term, text, or json)",
			c.Output.Format)
	}

	if strings.TrimSpace(c.Input.Column) == "" {
		return errors.New(errors.ErrConfigParse, "input column must not be empty")
	}

	return nil
}
