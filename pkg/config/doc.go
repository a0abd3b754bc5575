// Package config loads and validates sheetpick's configuration.
//
// Configuration is layered: embedded defaults, then an optional TOML
// file (.sheetpick.toml in the working directory or config.toml in the
// XDG config dir), then SHEETPICK_* environment variables. Flags are
// applied on top by the CLI layer.
package config
