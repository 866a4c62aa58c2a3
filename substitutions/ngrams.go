package substitutions

import (
	"iter"
	"slices"
	"sort"

	"subseek/core"
)

// FindNearMatchesNgrams reports every window of seq within
// maxSubstitutions element substitutions of sub using the fragment
// (ngram) strategy: the subsequence is carved into maxSubstitutions+1
// disjoint fragments, each exact fragment occurrence anchors a candidate
// window, and the rest of the window is verified around the anchor.
//
// A window with at most maxSubstitutions differences must contain at
// least one substitution-free fragment — otherwise every fragment would
// carry a difference and the total would exceed the budget — so every
// valid window is anchored by some exact fragment hit and none is missed.
//
// The result is deduplicated by start index (several fragments may anchor
// the same window) and sorted ascending by start.
//
// Errors: ErrEmptySubsequence, ErrNegativeSubstitutions,
// ErrSubsequenceTooShort.
func FindNearMatchesNgrams[E comparable](sub, seq []E, maxSubstitutions int) ([]core.Match, error) {
	candidates, err := ngramCandidates(sub, seq, maxSubstitutions)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	var matches []core.Match
	for m := range candidates {
		if _, dup := seen[m.Start]; dup {
			continue
		}
		seen[m.Start] = struct{}{}
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches, nil
}

// HasNearMatchNgrams reports whether seq contains any window within
// maxSubstitutions element substitutions of sub. It runs the same
// enumeration as FindNearMatchesNgrams but stops at the first candidate,
// skipping deduplication and sorting entirely.
//
// Errors: ErrEmptySubsequence, ErrNegativeSubstitutions,
// ErrSubsequenceTooShort.
func HasNearMatchNgrams[E comparable](sub, seq []E, maxSubstitutions int) (bool, error) {
	candidates, err := ngramCandidates(sub, seq, maxSubstitutions)
	if err != nil {
		return false, err
	}
	for range candidates {
		return true, nil
	}
	return false, nil
}

// ngramCandidates lazily enumerates candidate matches anchored by exact
// fragment hits. The same window start may be yielded once per fragment
// that anchors it; callers dedup as needed.
func ngramCandidates[E comparable](sub, seq []E, maxSubstitutions int) (iter.Seq[core.Match], error) {
	if len(sub) == 0 {
		return nil, ErrEmptySubsequence
	}
	if maxSubstitutions < 0 {
		return nil, ErrNegativeSubstitutions
	}
	fragLen := len(sub) / (maxSubstitutions + 1)
	if fragLen == 0 {
		return nil, ErrSubsequenceTooShort
	}

	return func(yield func(core.Match) bool) {
		subLen, seqLen := len(sub), len(seq)

		for f := 0; f+fragLen <= subLen; f += fragLen {
			before := sub[:f]
			after := sub[f+fragLen:]

			// A usable hit needs room for before on its left and after
			// on its right, hence the tightened search bounds.
			for h := range core.SearchExact(sub[f:f+fragLen], seq, f, seqLen-(subLen-f-fragLen)) {
				dist := 0

				seqBefore := seq[h-f : h]
				if !slices.Equal(seqBefore, before) {
					dist = countMismatches(seqBefore, before)
					if dist > maxSubstitutions {
						continue
					}
				}

				seqAfter := seq[h+fragLen : h-f+subLen]
				if !slices.Equal(seqAfter, after) {
					// Any difference past an exhausted budget sinks the
					// candidate without counting.
					if dist == maxSubstitutions {
						continue
					}
					dist += countMismatches(seqAfter, after)
					if dist > maxSubstitutions {
						continue
					}
				}

				if !yield(core.Match{Start: h - f, End: h - f + subLen, Dist: dist}) {
					return
				}
			}
		}
	}, nil
}

// countMismatches counts positions where a and b differ; the slices are
// equal-length by construction.
func countMismatches[E comparable](a, b []E) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
