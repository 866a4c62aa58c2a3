// Package core: the exact-search primitive.
package core

import (
	"bytes"
	"iter"
	"slices"
)

// SearchExact returns a lazy stream of every index i such that
// seq[i:i+len(fragment)] equals fragment elementwise, restricted to
// start <= i and i+len(fragment) <= end. Bounds are clamped to the
// sequence; an empty fragment or an empty range simply yields nothing.
//
// Indices are produced in strictly increasing order, overlapping
// occurrences included. The stream is finite, pull-based and must be
// consumed at most once.
func SearchExact[E comparable](fragment, seq []E, start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		g := len(fragment)
		if g == 0 {
			return
		}
		if start < 0 {
			start = 0
		}
		if end > len(seq) {
			end = len(seq)
		}

		// Byte sequences take the stdlib jump scan instead of the
		// window-by-window compare.
		if fb, ok := any(fragment).([]byte); ok {
			sb := any(seq).([]byte)
			for i := start; i+g <= end; {
				j := bytes.Index(sb[i:end], fb)
				if j < 0 {
					return
				}
				if !yield(i + j) {
					return
				}
				i += j + 1
			}
			return
		}

	scan:
		for i := start; i+g <= end; i++ {
			for j := 0; j < g; j++ {
				if seq[i+j] != fragment[j] {
					continue scan
				}
			}
			if !yield(i) {
				return
			}
		}
	}
}

// SearchExactAll collects every occurrence of fragment in seq into a
// slice. Convenience wrapper over SearchExact with full-sequence bounds.
func SearchExactAll[E comparable](fragment, seq []E) []int {
	return slices.Collect(SearchExact(fragment, seq, 0, len(seq)))
}
