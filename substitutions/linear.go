package substitutions

import (
	"iter"

	"subseek/core"
)

// FindNearMatchesLinear streams every window of seq within
// maxSubstitutions element substitutions of sub, in increasing order of
// start index, using a single O(N+L) pass over the sequence.
//
// The returned stream is lazy, finite and must be consumed at most once;
// stopping early abandons the scan with no cleanup required. Validation
// happens eagerly, before the stream is handed out.
//
// Algorithm: one match counter per candidate alignment, held in a ring
// of L counters. The counter at the ring head always belongs to the
// window ending at the current sequence index. Each element credits
// every alignment in which it matches the subsequence (via a positions
// multimap built once per call); advancing one element rotates the head
// so the oldest counter falls due, is read, and is recycled to zero for
// a future alignment.
//
// Errors: ErrEmptySubsequence, ErrNegativeSubstitutions.
func FindNearMatchesLinear[E comparable](sub, seq []E, maxSubstitutions int) (iter.Seq[core.Match], error) {
	if len(sub) == 0 {
		return nil, ErrEmptySubsequence
	}
	if maxSubstitutions < 0 {
		return nil, ErrNegativeSubstitutions
	}

	return func(yield func(core.Match) bool) {
		subLen := len(sub)

		// index of every occurrence of each distinct element within sub,
		// ascending per element
		positions := make(map[E][]int, subLen)
		for j, e := range sub {
			positions[e] = append(positions[e], j)
		}

		ring := make([]int, subLen)
		head := 0

		// Warm-up: the first subLen-1 elements cannot complete a window.
		// An alignment may only accrue credit once its implied window
		// start has entered the sequence, hence the j <= i cut.
		limit := subLen - 1
		if limit > len(seq) {
			limit = len(seq)
		}
		for i := 0; i < limit; i++ {
			for _, j := range positions[seq[i]] {
				if j > i {
					break
				}
				ring[(head+j)%subLen]++
			}
			head = (head + subLen - 1) % subLen
			ring[head] = 0
		}

		// Steady state: credit alignments as above, then settle the
		// window that started subLen-1 elements back.
		for i := limit; i < len(seq); i++ {
			for _, j := range positions[seq[i]] {
				ring[(head+j)%subLen]++
			}
			head = (head + subLen - 1) % subLen
			dist := subLen - ring[head]
			ring[head] = 0
			if dist <= maxSubstitutions {
				if !yield(core.Match{Start: i - subLen + 1, End: i + 1, Dist: dist}) {
					return
				}
			}
		}
	}, nil
}
