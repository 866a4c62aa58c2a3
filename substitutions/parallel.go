package substitutions

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"subseek/core"
)

// FindNearMatchesParallel searches a large sequence with bounded
// concurrency: seq is split into roughly equal chunks overlapping by
// len(sub)-1 elements (so no window straddling a boundary is lost), each
// chunk is searched with FindNearMatches under a weighted-semaphore
// worker cap, and the per-chunk results are shifted back to sequence
// coordinates, deduplicated by start and sorted.
//
// The matchers themselves stay single-threaded; this helper only
// parallelizes across disjoint calls. workers < 1 is treated as 1.
// The context bounds worker admission: once canceled, no new chunk is
// started and ctx.Err is returned.
//
// Errors: ErrEmptySubsequence, ErrNegativeSubstitutions, or the context
// error on cancellation.
func FindNearMatchesParallel[E comparable](ctx context.Context, sub, seq []E, maxSubstitutions, workers int) ([]core.Match, error) {
	if len(sub) == 0 {
		return nil, ErrEmptySubsequence
	}
	if maxSubstitutions < 0 {
		return nil, ErrNegativeSubstitutions
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(seq) + workers - 1) / workers
	if chunk < len(sub) {
		chunk = len(sub)
	}
	overlap := len(sub) - 1

	var (
		sem      = semaphore.NewWeighted(int64(workers))
		wg       sync.WaitGroup
		mu       sync.Mutex
		merged   []core.Match
		firstErr error
	)

	for lo := 0; lo < len(seq); lo += chunk {
		hi := lo + chunk + overlap
		if hi > len(seq) {
			hi = len(seq)
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			defer sem.Release(1)

			found, err := FindNearMatches(sub, seq[lo:hi], maxSubstitutions)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, m := range found {
				merged = append(merged, core.Match{Start: m.Start + lo, End: m.End + lo, Dist: m.Dist})
			}
		}(lo, hi)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	// With chunks stepping by chunk and extending by overlap, per-chunk
	// start ranges are disjoint; the dedup guards the merge should the
	// chunking ever change. Duplicates would be value-identical, so
	// keeping the first is safe.
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Start < merged[j].Start
	})
	var deduped []core.Match
	for _, m := range merged {
		if n := len(deduped); n > 0 && m.Start == deduped[n-1].Start {
			continue
		}
		deduped = append(deduped, m)
	}
	return deduped, nil
}
