package legality

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/sheencheck/internal/model"
)

// Entry pairs a record with the encounter it was matched to.
type Entry struct {
	Record    *model.PKM
	Encounter model.Encounter
}

// VerifyAll checks entries concurrently with at most workers goroutines.
// Reports keep the order of entries. workers <= 0 uses GOMAXPROCS.
//
// Records must be distinct: the checks only read them, but callers fixing
// stats in place (SetSuggestedStats) must finish before calling VerifyAll.
func VerifyAll(ctx context.Context, entries []Entry, workers int) ([]Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	for i, e := range entries {
		if e.Record == nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNilRecord)
		}
	}

	reports := make([]Report, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = VerifyContestStats(e.Record, e.Encounter)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verifying records: %w", err)
	}
	return reports, nil
}

// Summary aggregates batch results.
type Summary struct {
	Total   int
	Invalid int
	// ByPolicy counts records per contest policy.
	ByPolicy map[string]int
}

// Summarize counts valid/invalid reports.
func Summarize(reports []Report) Summary {
	s := Summary{Total: len(reports), ByPolicy: make(map[string]int, 4)}
	for _, r := range reports {
		if !r.Valid() {
			s.Invalid++
		}
		s.ByPolicy[r.Policy.String()]++
	}
	return s
}
