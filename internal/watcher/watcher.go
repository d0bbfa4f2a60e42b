// Package watcher provides background monitoring of a user's health score,
// recomputing it on an interval and emitting alerts on regressions.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/seacliff-health/vitals/internal/fetch"
	"github.com/seacliff-health/vitals/internal/score"
)

// State captures one observed scoring pass.
type State struct {
	Timestamp    time.Time
	Result       score.Result
	ReadingCount int
	LastReading  time.Time // most recent RecordedAt, zero when no readings
}

// Watcher recomputes a user's health score at a regular interval and emits
// alerts when notable changes are detected.
type Watcher struct {
	fetcher  *fetch.Fetcher
	userID   string
	rng      score.TimeRange
	interval time.Duration

	previous      *State
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts

	// DropThreshold is the overall-score decrease that triggers a warning.
	DropThreshold int

	// StaleAfter is how long without a new reading before alerting.
	StaleAfter time.Duration
}

// New creates a Watcher for one user and time range.
func New(f *fetch.Fetcher, userID string, rng score.TimeRange, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		fetcher:       f,
		userID:        userID,
		rng:           rng,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
		DropThreshold: 5,
		StaleAfter:    48 * time.Hour,
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alerts := w.Check(ctx)
			for _, a := range alerts {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check(ctx context.Context) []Alert {
	curr, err := w.Snapshot(ctx)
	if err != nil {
		return []Alert{{
			Level:   LevelWarning,
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not load readings: %v", err),
			Time:    time.Now(),
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr, w.DropThreshold)
	}

	// Stale-data alert: no new reading within the configured window.
	if w.StaleAfter > 0 && !curr.LastReading.IsZero() {
		if gap := curr.Timestamp.Sub(curr.LastReading); gap > w.StaleAfter {
			raw = append(raw, Alert{
				Level:   LevelWarning,
				Title:   "No recent readings",
				Message: fmt.Sprintf("Last reading was %dh ago", int(gap.Hours())),
				Time:    curr.Timestamp,
			})
		}
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := string(a.Level) + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot fetches the user's readings through the generation-guarded
// fetcher and computes a fresh score.
func (w *Watcher) Snapshot(ctx context.Context) (*State, error) {
	snap, err := w.fetcher.Fetch(ctx, w.userID, w.rng)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := score.Compute(snap.Readings, w.rng, score.Options{Now: now, History: snap.History})

	state := &State{
		Timestamp:    now,
		Result:       res,
		ReadingCount: len(snap.Readings),
	}
	for _, r := range snap.Readings {
		if r.RecordedAt.After(state.LastReading) {
			state.LastReading = r.RecordedAt
		}
	}
	return state, nil
}
