// pkg/output/renderer_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test format parsing/resolution and summary rendering in plain and styled modes

package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/index"
	"github.com/sheetpick/sheetpick/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() types.Summary {
	return types.Summary{
		Command:          "run",
		Targets:          18,
		MatchedUnique:    13,
		MatchedAmbiguous: 2,
		NotFound:         3,
		Copied:           12,
		Renamed:          3,
		Overwritten:      1,
		Skipped:          2,
		Failed:           1,
		OutputDir:        "/dest",
		ReportPath:       "/dest/sheetpick-report.csv",
		Duration:         125 * time.Millisecond,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"terminal", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
	}

	for _, tt := range tests {
		t.Run("parses_"+tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects_unknown_tokens", func(t *testing.T) {
		_, err := ParseFormat("xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("tokens_round_trip", func(t *testing.T) {
		for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON} {
			parsed, err := ParseFormat(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})
}

func TestResolve(t *testing.T) {
	t.Run("explicit_formats_pass_through", func(t *testing.T) {
		for _, f := range []Format{FormatTerminal, FormatText, FormatJSON} {
			assert.Equal(t, f, Resolve(f, os.Stdout))
		}
	})

	t.Run("no_color_forces_plain_text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, FormatText, Resolve(FormatAuto, os.Stdout))
	})

	t.Run("non_terminal_stream_gets_plain_text", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "captured"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, FormatText, Resolve(FormatAuto, f))
	})
}

func TestPlainRunSummary(t *testing.T) {
	r := NewRenderer(FormatText)

	t.Run("shows_all_counters", func(t *testing.T) {
		out := r.RenderRunSummary(sampleSummary())

		assert.Contains(t, out, "RUN")
		assert.Contains(t, out, "Names read: 18")
		assert.Contains(t, out, "Matched: 15 (2 ambiguous)")
		assert.Contains(t, out, "Not found: 3")
		assert.Contains(t, out, "Files placed: 16 (12 copied, 3 renamed, 1 overwritten)")
		assert.Contains(t, out, "Skipped: 2")
		assert.Contains(t, out, "Failed: 1")
		assert.Contains(t, out, "Output: /dest")
		assert.Contains(t, out, "Report: /dest/sheetpick-report.csv")
		assert.Contains(t, out, "Duration: 125ms")
	})

	t.Run("marks_dry_runs", func(t *testing.T) {
		s := sampleSummary()
		s.DryRun = true

		out := r.RenderRunSummary(s)
		assert.Contains(t, out, "RUN (DRY RUN)")
	})

	t.Run("clean_runs_omit_problem_lines", func(t *testing.T) {
		s := types.Summary{
			Command:       "run",
			Targets:       2,
			MatchedUnique: 2,
			Copied:        2,
		}

		out := r.RenderRunSummary(s)
		assert.NotContains(t, out, "Not found")
		assert.NotContains(t, out, "Failed")
		assert.NotContains(t, out, "Skipped")
		assert.Contains(t, out, "Files placed: 2 (2 copied)")
	})
}

func TestPlainScanSummary(t *testing.T) {
	r := NewRenderer(FormatText)

	stats := types.ScanStats{
		FilesIndexed:   42,
		EntriesSkipped: 2,
		DistinctKeys:   40,
		Duration:       10 * time.Millisecond,
	}

	t.Run("shows_scan_statistics", func(t *testing.T) {
		out := r.RenderScanSummary("/src", stats, nil)

		assert.Contains(t, out, "SCAN")
		assert.Contains(t, out, "Root: /src")
		assert.Contains(t, out, "Files indexed: 42")
		assert.Contains(t, out, "Distinct keys: 40")
		assert.Contains(t, out, "Entries skipped: 2")
		assert.NotContains(t, out, "Names with multiple files")
	})

	t.Run("lists_duplicate_groups", func(t *testing.T) {
		groups := []index.Group{{
			Key: "report.pdf",
			Candidates: []types.Candidate{
				{RelPath: "a/report.pdf"},
				{RelPath: "b/report.pdf"},
			},
		}}

		out := r.RenderScanSummary("/src", stats, groups)
		assert.Contains(t, out, "Names with multiple files: 1")
		assert.Contains(t, out, "report.pdf (2 files)")
		assert.Contains(t, out, "a/report.pdf")
		assert.Contains(t, out, "b/report.pdf")
	})
}

func TestRichRenderer(t *testing.T) {
	r := NewRenderer(FormatTerminal)

	t.Run("run_summary_carries_status_marks", func(t *testing.T) {
		out := r.RenderRunSummary(sampleSummary())

		assert.Contains(t, out, "Run")
		assert.Contains(t, out, "✓")
		assert.Contains(t, out, "✗")
		assert.Contains(t, out, "Names read: 18")
	})

	t.Run("scan_summary_flags_duplicates", func(t *testing.T) {
		groups := []index.Group{{
			Key:        "a.txt",
			Candidates: []types.Candidate{{RelPath: "a.txt"}, {RelPath: "sub/a.txt"}},
		}}

		out := r.RenderScanSummary("/src", types.ScanStats{FilesIndexed: 2, DistinctKeys: 1}, groups)
		assert.Contains(t, out, "!")
		assert.Contains(t, out, "a.txt (2 files)")
	})
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(sampleSummary())
	require.NoError(t, err)

	assert.Contains(t, out, `"command": "run"`)
	assert.Contains(t, out, `"targets": 18`)
	assert.Contains(t, out, `"copied": 12`)
}
