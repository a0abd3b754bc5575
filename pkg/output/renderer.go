// Package output presents run and scan results on the terminal.
//
// The same result renders three ways: styled (lipgloss, adaptive
// colors), plain text for pipes and dumb terminals, and JSON for
// downstream tooling. Format selection honors NO_COLOR and falls back
// to plain text whenever stdout is not a capable terminal.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/index"
	"github.com/sheetpick/sheetpick/pkg/output/styles"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Renderer turns results into display text.
type Renderer interface {
	// RenderRunSummary renders the closing summary of a run.
	RenderRunSummary(s types.Summary) string

	// RenderScanSummary renders source scan statistics and the
	// duplicate-name groups found.
	RenderScanSummary(root string, stats types.ScanStats, groups []index.Group) string
}

// NewRenderer returns the renderer for a resolved format. JSON output
// never goes through a renderer; callers marshal with RenderJSON.
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return &richRenderer{}
	}
	return &plainRenderer{}
}

// RenderJSON marshals a result for the json output format.
func RenderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot encode result as JSON")
	}
	return string(data), nil
}

// richRenderer produces styled terminal output.
type richRenderer struct{}

func (r *richRenderer) RenderRunSummary(s types.Summary) string {
	var out strings.Builder

	out.WriteString(styles.Get("Header").Render(runTitle(s)) + "\n")
	out.WriteString(indent(fmt.Sprintf("Names read: %d", s.Targets), 1) + "\n")

	matched := fmt.Sprintf("%s Matched: %d", mark("Success", "✓"), s.Matched())
	if s.MatchedAmbiguous > 0 {
		matched += fmt.Sprintf(" (%d ambiguous)", s.MatchedAmbiguous)
	}
	out.WriteString(indent(matched, 1) + "\n")

	if s.NotFound > 0 {
		out.WriteString(indent(fmt.Sprintf("%s Not found: %d", mark("Error", "✗"), s.NotFound), 1) + "\n")
	}

	out.WriteString(indent(fmt.Sprintf("Files placed: %d%s", s.Placed(), placementBreakdown(s)), 1) + "\n")

	if s.Skipped > 0 {
		out.WriteString(indent(fmt.Sprintf("%s Skipped: %d", mark("Muted", "○"), s.Skipped), 1) + "\n")
	}
	if s.Failed > 0 {
		out.WriteString(indent(fmt.Sprintf("%s Failed: %d", mark("Error", "✗"), s.Failed), 1) + "\n")
	}

	if s.OutputDir != "" {
		out.WriteString(indent("Output: "+styles.Get("Path").Render(s.OutputDir), 1) + "\n")
	}
	if s.ReportPath != "" {
		out.WriteString(indent("Report: "+styles.Get("Path").Render(s.ReportPath), 1) + "\n")
	}

	out.WriteString(indent(styles.Get("Muted").Render("Duration: "+fmtDuration(s.Duration)), 1))
	return out.String()
}

func (r *richRenderer) RenderScanSummary(root string, stats types.ScanStats, groups []index.Group) string {
	var out strings.Builder

	out.WriteString(styles.Get("Header").Render("Scan") + "\n")
	out.WriteString(indent("Root: "+styles.Get("Path").Render(root), 1) + "\n")
	out.WriteString(indent(fmt.Sprintf("Files indexed: %d", stats.FilesIndexed), 1) + "\n")
	out.WriteString(indent(fmt.Sprintf("Distinct keys: %d", stats.DistinctKeys), 1) + "\n")
	if stats.EntriesSkipped > 0 {
		out.WriteString(indent(fmt.Sprintf("Entries skipped: %d", stats.EntriesSkipped), 1) + "\n")
	}
	out.WriteString(indent(styles.Get("Muted").Render("Duration: "+fmtDuration(stats.Duration)), 1))

	if len(groups) > 0 {
		out.WriteString("\n\n")
		header := fmt.Sprintf("%s Names with multiple files: %d", mark("Warning", "!"), len(groups))
		out.WriteString(indent(header, 1) + "\n")

		for i, group := range groups {
			out.WriteString(indent(styles.Get("Count").Render(group.Key)+
				fmt.Sprintf(" (%d files)", len(group.Candidates)), 2) + "\n")
			for _, c := range group.Candidates {
				out.WriteString(indent(styles.Get("Muted").Render(c.RelPath), 3) + "\n")
			}
			if i < len(groups)-1 {
				out.WriteString("\n")
			}
		}
		return strings.TrimRight(out.String(), "\n")
	}

	return out.String()
}

// plainRenderer produces unstyled text for pipes and NO_COLOR.
type plainRenderer struct{}

func (r *plainRenderer) RenderRunSummary(s types.Summary) string {
	var out strings.Builder

	out.WriteString(strings.ToUpper(runTitle(s)) + "\n")
	out.WriteString(fmt.Sprintf("  Names read: %d\n", s.Targets))

	matched := fmt.Sprintf("  Matched: %d", s.Matched())
	if s.MatchedAmbiguous > 0 {
		matched += fmt.Sprintf(" (%d ambiguous)", s.MatchedAmbiguous)
	}
	out.WriteString(matched + "\n")

	if s.NotFound > 0 {
		out.WriteString(fmt.Sprintf("  Not found: %d\n", s.NotFound))
	}

	out.WriteString(fmt.Sprintf("  Files placed: %d%s\n", s.Placed(), placementBreakdown(s)))

	if s.Skipped > 0 {
		out.WriteString(fmt.Sprintf("  Skipped: %d\n", s.Skipped))
	}
	if s.Failed > 0 {
		out.WriteString(fmt.Sprintf("  Failed: %d\n", s.Failed))
	}

	if s.OutputDir != "" {
		out.WriteString("  Output: " + s.OutputDir + "\n")
	}
	if s.ReportPath != "" {
		out.WriteString("  Report: " + s.ReportPath + "\n")
	}

	out.WriteString("  Duration: " + fmtDuration(s.Duration))
	return out.String()
}

func (r *plainRenderer) RenderScanSummary(root string, stats types.ScanStats, groups []index.Group) string {
	var out strings.Builder

	out.WriteString("SCAN\n")
	out.WriteString("  Root: " + root + "\n")
	out.WriteString(fmt.Sprintf("  Files indexed: %d\n", stats.FilesIndexed))
	out.WriteString(fmt.Sprintf("  Distinct keys: %d\n", stats.DistinctKeys))
	if stats.EntriesSkipped > 0 {
		out.WriteString(fmt.Sprintf("  Entries skipped: %d\n", stats.EntriesSkipped))
	}
	out.WriteString("  Duration: " + fmtDuration(stats.Duration))

	if len(groups) > 0 {
		out.WriteString(fmt.Sprintf("\n\n  Names with multiple files: %d\n", len(groups)))
		for _, group := range groups {
			out.WriteString(fmt.Sprintf("    %s (%d files)\n", group.Key, len(group.Candidates)))
			for _, c := range group.Candidates {
				out.WriteString("      " + c.RelPath + "\n")
			}
		}
		return strings.TrimRight(out.String(), "\n")
	}

	return out.String()
}

// Helpers shared by both renderers.

func runTitle(s types.Summary) string {
	title := s.Command
	if len(title) > 0 {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	if s.DryRun {
		title += " (dry run)"
	}
	return title
}

// placementBreakdown lists the non-zero placement kinds, e.g.
// " (3 copied, 1 renamed)". Empty when nothing was placed.
func placementBreakdown(s types.Summary) string {
	parts := []string{}
	if s.Copied > 0 {
		parts = append(parts, fmt.Sprintf("%d copied", s.Copied))
	}
	if s.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", s.Renamed))
	}
	if s.Overwritten > 0 {
		parts = append(parts, fmt.Sprintf("%d overwritten", s.Overwritten))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
}

func mark(style, glyph string) string {
	return styles.Get(style).Render(glyph)
}

func fmtDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func indent(s string, level int) string {
	pad := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
