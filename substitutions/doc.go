// Package substitutions finds near-matches of a subsequence inside a
// longer sequence, allowing up to a fixed number of element
// substitutions and no insertions or deletions.
//
// What
//
//   - FindNearMatches — the dispatcher: validates input, then picks the
//     cheapest complete strategy for the given subsequence and budget.
//   - FindNearMatchesLinear — streaming ring-counter scan: one Match per
//     qualifying window, in increasing start order, O(N+L) total.
//   - FindNearMatchesNgrams — fragment matcher: carve the subsequence
//     into budget+1 disjoint fragments, anchor on exact fragment hits,
//     verify the surrounding window; deduplicated and sorted output.
//   - HasNearMatchNgrams — existence probe, stops at the first candidate.
//   - FindNearMatchesParallel — opt-in helper for very long sequences:
//     overlapping chunks searched concurrently under a worker cap.
//
// Why
//
//	A naive scan compares every window elementwise in O(N·L). The
//	ring-counter scan does the same work in one O(N+L) pass, and the
//	fragment matcher skips non-candidate windows entirely whenever the
//	fragments are selective enough (length >= 3), which is exactly when
//	the dispatcher picks it.
//
// Strategy selection (FindNearMatches)
//
//  1. budget == 0        → exact search, wrapped as zero-distance matches
//  2. len(sub)/(budget+1) >= 3 → fragment matcher
//  3. otherwise          → ring-counter scan
//
// Determinism
//
//	All matchers are pure and deterministic: same inputs, same output,
//	sorted ascending by window start. Nothing is shared across calls, so
//	independent calls may run concurrently.
//
// Complexity (N = len(seq), L = len(sub), K = budget)
//
//   - Linear:   Time O(N+L) amortized, Memory O(L)
//   - Ngrams:   Time O(N·L/(K+1)) worst case, far less on selective
//     fragments; Memory O(matches)
//
// Errors
//
//   - ErrEmptySubsequence       — subsequence has no elements
//   - ErrNegativeSubstitutions  — budget below zero
//   - ErrSubsequenceTooShort    — budget too large for any non-empty fragment
//
// Usage
//
//	matches, err := substitutions.FindNearMatches([]byte("ACGGTACTGG"), genome, 2)
//	if err != nil {
//	  // handle ErrEmptySubsequence or ErrNegativeSubstitutions
//	}
//	for _, m := range matches {
//	  fmt.Println(m.Start, m.End, m.Dist)
//	}
package substitutions
