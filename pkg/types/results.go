package types

// MatchStatus describes how a target name fared against the file index.
// The values are the stable lowercase tokens written to the report CSV.
type MatchStatus string

const (
	MatchNotFound  MatchStatus = "not_found"
	MatchUnique    MatchStatus = "matched_unique"
	MatchAmbiguous MatchStatus = "matched_ambiguous"
)

// CopyStatus describes the outcome of copying one matched candidate.
// The values are the stable lowercase tokens written to the report CSV.
type CopyStatus string

const (
	CopyCopied      CopyStatus = "copied"
	CopyOverwritten CopyStatus = "overwritten"
	CopyRenamed     CopyStatus = "renamed"
	CopySkipped     CopyStatus = "skipped"
	CopyFailed      CopyStatus = "failed"
)

// MatchResult pairs a target name with the candidates found for it.
// Candidates are in stable path-sorted order; Detail carries a
// human-readable note such as "empty name".
type MatchResult struct {
	Target     TargetName  `json:"target"`
	Status     MatchStatus `json:"status"`
	Candidates []Candidate `json:"candidates,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

// CopyOutcome records what happened to a single candidate at the copier.
type CopyOutcome struct {
	// Source is the candidate's absolute path.
	Source string `json:"source"`

	// OutputPath is the path written in the output directory. Empty when
	// nothing was written (skipped or failed before the destination was
	// chosen).
	OutputPath string `json:"outputPath,omitempty"`

	// Status is the outcome token.
	Status CopyStatus `json:"status"`

	// Detail carries the renamed base name, the failure reason, or the
	// skip reason. Empty for plain copies.
	Detail string `json:"detail,omitempty"`
}

// RowRecord is everything known about one input row by the time it is
// written to the report: the match result plus one copy outcome per
// candidate that reached the copier.
type RowRecord struct {
	Match    MatchResult   `json:"match"`
	Outcomes []CopyOutcome `json:"outcomes,omitempty"`
}
