package output

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sheetpick/sheetpick/pkg/errors"
)

// Format selects how command results are presented.
type Format int

const (
	// FormatAuto picks terminal or plain output based on where stdout
	// is going.
	FormatAuto Format = iota
	// FormatTerminal renders styled terminal output.
	FormatTerminal
	// FormatText renders plain text with no styling.
	FormatText
	// FormatJSON renders machine-readable JSON.
	FormatJSON
)

// String returns the format's configuration token.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a configuration token into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput,
			"unknown output format %q (auto, term, text, json)", s)
	}
}

// Resolve turns FormatAuto into a concrete format for the given
// stream; explicit formats pass through unchanged.
func Resolve(f Format, stream *os.File) Format {
	if f != FormatAuto {
		return f
	}
	return detect(stream)
}

// detect decides between styled and plain output. NO_COLOR, piped
// output, and dumb terminals all force plain text.
func detect(stream *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	fd := stream.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
