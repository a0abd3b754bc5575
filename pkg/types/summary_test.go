// pkg/types/summary_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test summary aggregation and status helpers

package types_test

import (
	"testing"

	"github.com/sheetpick/sheetpick/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Add(t *testing.T) {
	tests := []struct {
		name    string
		records []types.RowRecord
		want    types.Summary
	}{
		{
			name: "unique_match_copied",
			records: []types.RowRecord{
				{
					Match: types.MatchResult{
						Target: types.TargetName{Row: 1, Text: "report.pdf"},
						Status: types.MatchUnique,
					},
					Outcomes: []types.CopyOutcome{
						{Status: types.CopyCopied},
					},
				},
			},
			want: types.Summary{
				Targets:       1,
				MatchedUnique: 1,
				Copied:        1,
			},
		},
		{
			name: "not_found_has_no_outcomes",
			records: []types.RowRecord{
				{
					Match: types.MatchResult{
						Target: types.TargetName{Row: 1, Text: "missing.txt"},
						Status: types.MatchNotFound,
					},
				},
			},
			want: types.Summary{
				Targets:  1,
				NotFound: 1,
			},
		},
		{
			name: "ambiguous_match_counts_each_outcome",
			records: []types.RowRecord{
				{
					Match: types.MatchResult{
						Target: types.TargetName{Row: 2, Text: "a"},
						Status: types.MatchAmbiguous,
					},
					Outcomes: []types.CopyOutcome{
						{Status: types.CopyCopied},
						{Status: types.CopyRenamed},
					},
				},
			},
			want: types.Summary{
				Targets:          1,
				MatchedAmbiguous: 1,
				Copied:           1,
				Renamed:          1,
			},
		},
		{
			name: "mixed_batch",
			records: []types.RowRecord{
				{
					Match:    types.MatchResult{Status: types.MatchUnique},
					Outcomes: []types.CopyOutcome{{Status: types.CopyOverwritten}},
				},
				{
					Match:    types.MatchResult{Status: types.MatchUnique},
					Outcomes: []types.CopyOutcome{{Status: types.CopyFailed, Detail: "permission denied"}},
				},
				{
					Match:    types.MatchResult{Status: types.MatchUnique},
					Outcomes: []types.CopyOutcome{{Status: types.CopySkipped, Detail: "dry run"}},
				},
				{
					Match: types.MatchResult{Status: types.MatchNotFound},
				},
			},
			want: types.Summary{
				Targets:       4,
				MatchedUnique: 3,
				NotFound:      1,
				Overwritten:   1,
				Failed:        1,
				Skipped:       1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got types.Summary
			for _, record := range tt.records {
				got.Add(record)
			}

			assert.Equal(t, tt.want.Targets, got.Targets)
			assert.Equal(t, tt.want.MatchedUnique, got.MatchedUnique)
			assert.Equal(t, tt.want.MatchedAmbiguous, got.MatchedAmbiguous)
			assert.Equal(t, tt.want.NotFound, got.NotFound)
			assert.Equal(t, tt.want.Copied, got.Copied)
			assert.Equal(t, tt.want.Overwritten, got.Overwritten)
			assert.Equal(t, tt.want.Renamed, got.Renamed)
			assert.Equal(t, tt.want.Skipped, got.Skipped)
			assert.Equal(t, tt.want.Failed, got.Failed)
		})
	}
}

func TestSummary_HasProblems(t *testing.T) {
	tests := []struct {
		name    string
		summary types.Summary
		want    bool
	}{
		{
			name:    "clean_run",
			summary: types.Summary{Targets: 3, MatchedUnique: 3, Copied: 3},
			want:    false,
		},
		{
			name:    "not_found_is_a_problem",
			summary: types.Summary{Targets: 3, MatchedUnique: 2, NotFound: 1, Copied: 2},
			want:    true,
		},
		{
			name:    "copy_failure_is_a_problem",
			summary: types.Summary{Targets: 2, MatchedUnique: 2, Copied: 1, Failed: 1},
			want:    true,
		},
		{
			name:    "skips_alone_are_not_problems",
			summary: types.Summary{Targets: 2, MatchedUnique: 2, Skipped: 2},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.HasProblems())
		})
	}
}

func TestSummary_DerivedCounts(t *testing.T) {
	summary := types.Summary{
		MatchedUnique:    4,
		MatchedAmbiguous: 2,
		Copied:           3,
		Overwritten:      1,
		Renamed:          2,
		Skipped:          1,
		Failed:           1,
	}

	assert.Equal(t, 6, summary.Matched())
	assert.Equal(t, 6, summary.Placed())
}

func TestTargetName_IsBlank(t *testing.T) {
	assert.True(t, types.TargetName{Row: 5}.IsBlank())
	assert.False(t, types.TargetName{Row: 5, Text: "a.txt"}.IsBlank())
}
