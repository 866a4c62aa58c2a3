package substitutions

import (
	"slices"

	"subseek/core"
)

// FindNearMatches reports every window of seq within maxSubstitutions
// element substitutions of sub, sorted ascending by start index.
//
// The implementation is picked per call:
//
//  1. maxSubstitutions == 0 — plain exact search; always complete.
//  2. len(sub)/(maxSubstitutions+1) >= 3 — fragment (ngram) matcher:
//     the fragments are long enough to prune candidates effectively.
//  3. otherwise — the linear ring-counter scan.
//
// Errors: ErrEmptySubsequence if sub has no elements,
// ErrNegativeSubstitutions if the budget is negative.
func FindNearMatches[E comparable](sub, seq []E, maxSubstitutions int) ([]core.Match, error) {
	if len(sub) == 0 {
		return nil, ErrEmptySubsequence
	}
	if maxSubstitutions < 0 {
		return nil, ErrNegativeSubstitutions
	}

	if maxSubstitutions == 0 {
		var matches []core.Match
		for start := range core.SearchExact(sub, seq, 0, len(seq)) {
			matches = append(matches, core.Match{Start: start, End: start + len(sub), Dist: 0})
		}
		return matches, nil
	}

	if len(sub)/(maxSubstitutions+1) >= minFragmentLen {
		return FindNearMatchesNgrams(sub, seq, maxSubstitutions)
	}

	stream, err := FindNearMatchesLinear(sub, seq, maxSubstitutions)
	if err != nil {
		return nil, err
	}
	return slices.Collect(stream), nil
}
