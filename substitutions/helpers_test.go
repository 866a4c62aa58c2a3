package substitutions_test

import (
	"math/rand"

	"subseek/core"
)

// bruteForce is the O(N·L) reference matcher: compare the subsequence
// against every window elementwise. All matcher tests validate against it.
func bruteForce(sub, seq []byte, maxSubs int) []core.Match {
	var out []core.Match
	for s := 0; s+len(sub) <= len(seq); s++ {
		dist := 0
		for j := range sub {
			if seq[s+j] != sub[j] {
				dist++
			}
		}
		if dist <= maxSubs {
			out = append(out, core.Match{Start: s, End: s + len(sub), Dist: dist})
		}
	}
	return out
}

// randomSeq builds a length-n sequence over a small alphabet starting at
// 'a'. Small alphabets keep near-matches frequent enough to be interesting.
func randomSeq(r *rand.Rand, n, alphabet int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('a' + r.Intn(alphabet))
	}
	return s
}
