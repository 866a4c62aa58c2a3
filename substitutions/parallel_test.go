package substitutions_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subseek/substitutions"
)

// TestFindNearMatchesParallel_MatchesSequential verifies the chunked
// concurrent helper returns exactly the sequential result for any worker
// count, including windows straddling chunk boundaries.
func TestFindNearMatchesParallel_MatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	ctx := context.Background()

	for trial := 0; trial < 60; trial++ {
		seq := randomSeq(r, 50+r.Intn(300), 3)
		sub := randomSeq(r, 3+r.Intn(8), 3)
		maxSubs := r.Intn(3)

		want, err := substitutions.FindNearMatches(sub, seq, maxSubs)
		require.NoError(t, err)

		for workers := 1; workers <= 4; workers++ {
			got, err := substitutions.FindNearMatchesParallel(ctx, sub, seq, maxSubs, workers)
			require.NoError(t, err)
			require.Equal(t, want, got,
				"sub=%q maxSubs=%d workers=%d", sub, maxSubs, workers)
		}
	}
}

// TestFindNearMatchesParallel_Validation verifies the helper shares the
// engine's eager validation.
func TestFindNearMatchesParallel_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := substitutions.FindNearMatchesParallel(ctx, []byte{}, []byte("abc"), 1, 2)
	assert.ErrorIs(t, err, substitutions.ErrEmptySubsequence)

	_, err = substitutions.FindNearMatchesParallel(ctx, []byte("abc"), []byte("abc"), -1, 2)
	assert.ErrorIs(t, err, substitutions.ErrNegativeSubstitutions)
}

// TestFindNearMatchesParallel_Canceled verifies a canceled context stops
// admission and surfaces the context error.
func TestFindNearMatchesParallel_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := substitutions.FindNearMatchesParallel(ctx, []byte("abc"), []byte("abcabcabc"), 1, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindNearMatchesParallel_WorkerClamp verifies workers < 1 is
// treated as a single worker rather than rejected.
func TestFindNearMatchesParallel_WorkerClamp(t *testing.T) {
	got, err := substitutions.FindNearMatchesParallel(context.Background(), []byte("abc"), []byte("abc axc abc"), 1, 0)
	require.NoError(t, err)

	want, err := substitutions.FindNearMatches([]byte("abc"), []byte("abc axc abc"), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
