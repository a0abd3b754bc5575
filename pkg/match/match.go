// Package match resolves target names against the source index. It is
// a pure mapping: every target yields exactly one result, in input
// order, and nothing here touches the filesystem.
package match

import (
	"github.com/sheetpick/sheetpick/pkg/index"
	"github.com/sheetpick/sheetpick/pkg/logging"
	"github.com/sheetpick/sheetpick/pkg/normalize"
	"github.com/sheetpick/sheetpick/pkg/types"
)

// Options controls target folding; it must mirror what the index was
// built with.
type Options struct {
	Normalize normalize.Options
}

// Resolve looks up each target in the index and classifies the result.
func Resolve(targets []types.TargetName, idx *index.Index, opts Options) []types.MatchResult {
	logger := logging.GetLogger("match")

	results := make([]types.MatchResult, 0, len(targets))
	counts := struct{ unique, ambiguous, notFound int }{}

	for _, target := range targets {
		result := resolveOne(target, idx, opts)
		results = append(results, result)

		switch result.Status {
		case types.MatchUnique:
			counts.unique++
		case types.MatchAmbiguous:
			counts.ambiguous++
		case types.MatchNotFound:
			counts.notFound++
		}
	}

	logger.Debug().
		Int("targets", len(targets)).
		Int("unique", counts.unique).
		Int("ambiguous", counts.ambiguous).
		Int("notFound", counts.notFound).
		Msg("Matching complete")

	return results
}

func resolveOne(target types.TargetName, idx *index.Index, opts Options) types.MatchResult {
	if target.IsBlank() {
		return types.MatchResult{
			Target: target,
			Status: types.MatchNotFound,
			Detail: "empty name",
		}
	}

	key := normalize.Key(target.Text, opts.Normalize)
	candidates := idx.Lookup(key)

	switch len(candidates) {
	case 0:
		return types.MatchResult{
			Target: target,
			Status: types.MatchNotFound,
		}
	case 1:
		return types.MatchResult{
			Target:     target,
			Status:     types.MatchUnique,
			Candidates: candidates,
		}
	default:
		return types.MatchResult{
			Target:     target,
			Status:     types.MatchAmbiguous,
			Candidates: candidates,
		}
	}
}
