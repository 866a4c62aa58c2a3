// Package core defines the primitives shared by every subseek matcher:
// the Match value describing one near-match, and the exact-search
// primitive used both as the zero-substitution fast path and as the
// fragment anchor of the ngram matcher.
//
// What
//
//   - Match: immutable {Start, End, Dist} record — a half-open window
//     [Start, End) into the searched sequence plus its substitution count.
//   - SearchExact: lazily yields every index where a fragment occurs
//     verbatim inside a sequence, restricted to optional [start, end)
//     bounds. The stream is finite, pull-based and consumed once.
//
// Why
//
//   - Matchers stay free of index bookkeeping: they anchor on exact hits
//     and only count substitutions around them.
//   - A lazy index stream lets callers stop early (existence probes)
//     without paying for the full scan.
//
// Determinism
//
//	SearchExact yields indices in strictly increasing order; every
//	consumer downstream inherits that ordering.
//
// Complexity (N = len(seq), G = len(fragment))
//
//   - Time:   O(N·G) worst case for arbitrary element types;
//     []byte sequences take the bytes.Index jump-scan path.
//   - Memory: O(1) beyond the yielded indices.
package core
