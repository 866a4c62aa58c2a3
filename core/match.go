// Package core: the Match value type.
package core

import "fmt"

// Match describes one near-match of a subsequence inside a sequence:
// the half-open window [Start, End) and the number of substituted
// elements within it. A Match is a plain value — construct it with a
// struct literal; matchers are responsible for enforcing Dist against
// their substitution budget.
type Match struct {
	// Start is the index of the first element of the window.
	Start int

	// End is the index one past the last element of the window,
	// so End-Start always equals the subsequence length.
	End int

	// Dist is the number of positions where the window differs
	// from the subsequence.
	Dist int
}

// Len returns the window length, End-Start.
func (m Match) Len() int { return m.End - m.Start }

// String renders the match as "[Start:End)/Dist=d" for logs and tests.
func (m Match) String() string {
	return fmt.Sprintf("[%d:%d)/Dist=%d", m.Start, m.End, m.Dist)
}
