// Package substitutions: sentinel errors and tuning constants.
package substitutions

import "errors"

// Sentinel errors shared by every entry point. All input validation is
// eager: a call either fails with one of these before scanning anything,
// or it runs to completion.
var (
	// ErrEmptySubsequence is returned when the subsequence has no elements.
	ErrEmptySubsequence = errors.New("substitutions: subsequence is empty")

	// ErrNegativeSubstitutions is returned when the substitution budget
	// is below zero.
	ErrNegativeSubstitutions = errors.New("substitutions: max substitutions must be >= 0")

	// ErrSubsequenceTooShort is returned by the ngram matcher when the
	// budget is so large that no non-empty fragment can be carved, i.e.
	// len(subsequence)/(maxSubstitutions+1) == 0.
	ErrSubsequenceTooShort = errors.New("substitutions: subsequence length must exceed max substitutions")
)

// minFragmentLen is the smallest fragment length at which the ngram
// matcher beats the linear scan: shorter anchors hit too often to prune
// candidate windows effectively.
const minFragmentLen = 3
