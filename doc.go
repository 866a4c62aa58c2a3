// Package subseek finds approximate occurrences of a subsequence inside a
// longer sequence, allowing element substitutions but no insertions or
// deletions.
//
// 🚀 What is subseek?
//
//	A small, generic library for substitution-only near matching:
//		• Works on any []E with E comparable — bytes, runes, tokens, ints
//		• Exact search fast path (zero substitutions)
//		• O(N+L) streaming ring-counter matcher
//		• Pigeonhole fragment (ngram) matcher for selective patterns
//		• Existence probe for cheap "is there any match?" queries
//
// ✨ Why choose subseek?
//
//   - Minimal API — one dispatcher picks the right algorithm for you
//   - Deterministic, allocation-conscious, pure computation
//   - Pure Go core — concurrency only in the opt-in parallel helper
//
// Everything is organized under two subpackages:
//
//	core/          — the Match value and the exact-search primitive
//	substitutions/ — the matchers, the dispatcher and the existence probe
//
// Quick example:
//
//	matches, err := substitutions.FindNearMatches([]byte("PATTERN"), data, 2)
//
// returns every window of data within two substitutions of "PATTERN",
// sorted by start index.
package subseek
