package types

import "time"

// ScanStats describes what the source scan saw.
type ScanStats struct {
	FilesIndexed   int           `json:"filesIndexed"`
	EntriesSkipped int           `json:"entriesSkipped"`
	DistinctKeys   int           `json:"distinctKeys"`
	Duration       time.Duration `json:"duration"`
}

// Summary aggregates one run's counts for display and the JSON output.
type Summary struct {
	RunID     string    `json:"runId"`
	Command   string    `json:"command"` // "run", "scan"
	DryRun    bool      `json:"dryRun"`
	Timestamp time.Time `json:"timestamp"`

	Targets          int `json:"targets"`
	MatchedUnique    int `json:"matchedUnique"`
	MatchedAmbiguous int `json:"matchedAmbiguous"`
	NotFound         int `json:"notFound"`

	Copied      int `json:"copied"`
	Overwritten int `json:"overwritten"`
	Renamed     int `json:"renamed"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`

	Scan ScanStats `json:"scan"`

	OutputDir  string        `json:"outputDir,omitempty"`
	ReportPath string        `json:"reportPath,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Add folds one report row into the summary counts.
func (s *Summary) Add(record RowRecord) {
	s.Targets++

	switch record.Match.Status {
	case MatchUnique:
		s.MatchedUnique++
	case MatchAmbiguous:
		s.MatchedAmbiguous++
	case MatchNotFound:
		s.NotFound++
	}

	for _, outcome := range record.Outcomes {
		switch outcome.Status {
		case CopyCopied:
			s.Copied++
		case CopyOverwritten:
			s.Overwritten++
		case CopyRenamed:
			s.Renamed++
		case CopySkipped:
			s.Skipped++
		case CopyFailed:
			s.Failed++
		}
	}
}

// Matched returns the number of targets that matched at least one file.
func (s *Summary) Matched() int {
	return s.MatchedUnique + s.MatchedAmbiguous
}

// Placed returns the number of files that landed in the output directory.
func (s *Summary) Placed() int {
	return s.Copied + s.Overwritten + s.Renamed
}

// HasProblems determines whether the run needs attention.
// Following the aggregation rules:
// - Any copy failure -> problems
// - Any name not found -> problems
// - Everything matched and placed -> clean
func (s *Summary) HasProblems() bool {
	return s.Failed > 0 || s.NotFound > 0
}
