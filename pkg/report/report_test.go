// pkg/report/report_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: In-memory filesystem (one real-filesystem setup failure case)
// PURPOSE: Test CSV shape, row order, multi-candidate joining, incremental flushing, and summary accumulation

package report_test

import (
	"path/filepath"
	"testing"

	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/filesystem"
	"github.com/sheetpick/sheetpick/pkg/report"
	"github.com/sheetpick/sheetpick/pkg/testutil"
	"github.com/sheetpick/sheetpick/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notFound(row int, text, detail string) types.RowRecord {
	return types.RowRecord{
		Match: types.MatchResult{
			Target: types.TargetName{Row: row, Text: text},
			Status: types.MatchNotFound,
			Detail: detail,
		},
	}
}

func uniqueCopied(row int, text, srcPath, outPath string) types.RowRecord {
	return types.RowRecord{
		Match: types.MatchResult{
			Target:     types.TargetName{Row: row, Text: text},
			Status:     types.MatchUnique,
			Candidates: []types.Candidate{{Path: srcPath}},
		},
		Outcomes: []types.CopyOutcome{{
			Source:     srcPath,
			OutputPath: outPath,
			Status:     types.CopyCopied,
		}},
	}
}

func TestWriter(t *testing.T) {
	t.Run("header_is_written_immediately", func(t *testing.T) {
		fs := filesystem.NewMemory()

		_, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"row", "name", "status", "matched_path", "copy_outcome", "detail"}, rows[0])
	})

	t.Run("one_row_per_record_in_input_order", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)

		require.NoError(t, w.Record(uniqueCopied(1, "alpha.txt", "/src/alpha.txt", "/out/alpha.txt")))
		require.NoError(t, w.Record(notFound(2, "beta.txt", "")))
		require.NoError(t, w.Record(uniqueCopied(3, "gamma.txt", "/src/gamma.txt", "/out/gamma.txt")))
		require.NoError(t, w.Close())

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 4)
		assert.Equal(t, "1", rows[1][0])
		assert.Equal(t, "2", rows[2][0])
		assert.Equal(t, "3", rows[3][0])
		assert.Equal(t, "alpha.txt", rows[1][1])
		assert.Equal(t, "beta.txt", rows[2][1])
		assert.Equal(t, "gamma.txt", rows[3][1])
	})

	t.Run("unique_match_makes_a_plain_row", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)
		require.NoError(t, w.Record(uniqueCopied(2, "report", "/src/report.pdf", "/out/report.pdf")))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"2", "report", "matched_unique", "/src/report.pdf", "copied", ""}, rows[1])
	})

	t.Run("empty_name_keeps_its_row", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)
		require.NoError(t, w.Record(notFound(5, "", "empty name")))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"5", "", "not_found", "", "", "empty name"}, rows[1])
	})

	t.Run("ambiguous_match_joins_columns_with_semicolons", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)

		rec := types.RowRecord{
			Match: types.MatchResult{
				Target: types.TargetName{Row: 4, Text: "report.pdf"},
				Status: types.MatchAmbiguous,
				Candidates: []types.Candidate{
					{Path: "/src/a/report.pdf"},
					{Path: "/src/b/report.pdf"},
				},
			},
			Outcomes: []types.CopyOutcome{
				{Source: "/src/a/report.pdf", OutputPath: "/out/report.pdf", Status: types.CopyCopied},
				{Source: "/src/b/report.pdf", OutputPath: "/out/report(1).pdf", Status: types.CopyRenamed, Detail: "report(1).pdf"},
			},
		}
		require.NoError(t, w.Record(rec))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, "/src/a/report.pdf;/src/b/report.pdf", rows[1][3])
		assert.Equal(t, "copied;renamed", rows[1][4])
		assert.Equal(t, ";report(1).pdf", rows[1][5])
	})

	t.Run("detail_collapses_when_no_outcome_has_one", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)

		rec := types.RowRecord{
			Match: types.MatchResult{
				Target: types.TargetName{Row: 1, Text: "report"},
				Status: types.MatchAmbiguous,
				Candidates: []types.Candidate{
					{Path: "/src/report.pdf"},
					{Path: "/src/report.txt"},
				},
			},
			Outcomes: []types.CopyOutcome{
				{Source: "/src/report.pdf", OutputPath: "/out/report.pdf", Status: types.CopyCopied},
				{Source: "/src/report.txt", OutputPath: "/out/report.txt", Status: types.CopyCopied},
			},
		}
		require.NoError(t, w.Record(rec))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, "", rows[1][5])
	})

	t.Run("name_with_commas_survives_the_round_trip", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)
		require.NoError(t, w.Record(notFound(1, `minutes, "final".doc`, "")))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, `minutes, "final".doc`, rows[1][1])
	})

	t.Run("rows_are_readable_before_close", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)
		require.NoError(t, w.Record(notFound(1, "alpha", "")))

		rows := testutil.ReadCSV(t, fs, "/out/report.csv")
		assert.Len(t, rows, 2, "recorded rows should hit the disk before Close")
	})

	t.Run("summary_accumulates_counters", func(t *testing.T) {
		fs := filesystem.NewMemory()

		w, err := report.New(fs, "/out/report.csv")
		require.NoError(t, err)

		require.NoError(t, w.Record(uniqueCopied(1, "alpha.txt", "/src/alpha.txt", "/out/alpha.txt")))
		require.NoError(t, w.Record(notFound(2, "", "empty name")))
		require.NoError(t, w.Record(types.RowRecord{
			Match: types.MatchResult{
				Target: types.TargetName{Row: 3, Text: "report.pdf"},
				Status: types.MatchAmbiguous,
				Candidates: []types.Candidate{
					{Path: "/src/a/report.pdf"},
					{Path: "/src/b/report.pdf"},
				},
			},
			Outcomes: []types.CopyOutcome{
				{Status: types.CopyCopied},
				{Status: types.CopyFailed, Detail: "permission denied"},
			},
		}))

		s := w.Summary()
		assert.Equal(t, 3, s.Targets)
		assert.Equal(t, 1, s.MatchedUnique)
		assert.Equal(t, 1, s.MatchedAmbiguous)
		assert.Equal(t, 1, s.NotFound)
		assert.Equal(t, 2, s.Copied)
		assert.Equal(t, 1, s.Failed)
		assert.Equal(t, "/out/report.csv", s.ReportPath)
		assert.True(t, s.HasProblems())
	})
}

func TestNew(t *testing.T) {
	t.Run("unwritable_report_path_is_fatal", func(t *testing.T) {
		fs := filesystem.NewOS()
		blocker := testutil.CreateFile(t, t.TempDir(), "taken", "x")

		_, err := report.New(fs, filepath.Join(blocker, "report.csv"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrReportWrite))
	})
}
