// Package fetch loads scoring inputs from the metric store, guarding against
// out-of-order delivery when fetches supersede one another.
package fetch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seacliff-health/vitals/internal/metrics"
	"github.com/seacliff-health/vitals/internal/score"
)

// Source is the read surface of the metric store the fetcher depends on.
type Source interface {
	GetReadings(userID string) ([]metrics.Reading, error)
	GetScoreHistory(userID string, rng score.TimeRange, n int) ([]int, error)
}

// Snapshot bundles everything one scoring pass needs, tagged with the
// generation of the fetch that produced it.
type Snapshot struct {
	Generation uint64
	UserID     string
	Range      score.TimeRange
	Readings   []metrics.Reading
	History    []int
	FetchedAt  time.Time
}

// Fetcher loads readings and score history for a user. Every Fetch is
// stamped with a monotonically increasing generation; a result whose
// generation is older than the newest published snapshot is discarded, so a
// slow fetch can never overwrite a newer one regardless of arrival order.
type Fetcher struct {
	src Source

	// HistoryLimit bounds how many past overall scores feed the trend.
	HistoryLimit int

	gen    atomic.Uint64
	mu     sync.Mutex
	latest *Snapshot
}

// DefaultHistoryLimit is how many past scores the trend looks at by default.
const DefaultHistoryLimit = 10

// New creates a Fetcher over the given source.
func New(src Source) *Fetcher {
	return &Fetcher{src: src, HistoryLimit: DefaultHistoryLimit}
}

// Fetch loads readings and score history concurrently and publishes the
// result if it is still the newest generation. The returned snapshot is the
// newest published one, which may come from a fetch that superseded this
// call. Errors are returned once and not retried; the caller decides whether
// to fall back to a "no data" state.
func (f *Fetcher) Fetch(ctx context.Context, userID string, rng score.TimeRange) (*Snapshot, error) {
	gen := f.gen.Add(1)

	var (
		readings []metrics.Reading
		history  []int
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		readings, err = f.src.GetReadings(userID)
		if err != nil {
			return fmt.Errorf("loading readings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = f.src.GetScoreHistory(userID, rng, f.HistoryLimit)
		if err != nil {
			return fmt.Errorf("loading score history: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Generation: gen,
		UserID:     userID,
		Range:      rng,
		Readings:   readings,
		History:    history,
		FetchedAt:  time.Now(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil || gen > f.latest.Generation {
		f.latest = snap
	}
	return f.latest, nil
}

// Latest returns the newest published snapshot, or nil before the first
// successful Fetch.
func (f *Fetcher) Latest() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}
