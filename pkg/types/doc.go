// Package types defines the core types and interfaces used throughout
// sheetpick. This includes the FS filesystem interface as well as data
// structures like TargetName, Candidate, MatchResult, and Summary.
package types
