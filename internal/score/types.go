// Package score computes a composite wellness score from health metric
// readings: per-metric sub-scores from fixed clinical threshold ladders, a
// tracking-consistency sub-score, and a weighted overall score with a letter
// grade. Compute is pure; all I/O lives with the caller.
package score

import (
	"time"

	"github.com/seacliff-health/vitals/internal/metrics"
)

// TimeRange is the lookback window for a scoring pass.
type TimeRange string

// Supported lookback windows.
const (
	RangeWeek        TimeRange = "week"
	RangeMonth       TimeRange = "month"
	RangeThreeMonths TimeRange = "3months"
)

// Valid reports whether r is a supported time range.
func (r TimeRange) Valid() bool {
	switch r {
	case RangeWeek, RangeMonth, RangeThreeMonths:
		return true
	}
	return false
}

// Status is the qualitative rating of a sub-score.
type Status string

// Status levels, best to worst.
const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
)

// Grade is the letter grade mapped from the overall score.
type Grade string

// Letter grades.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Trend describes the overall score's direction relative to recent history.
type Trend string

// Trend directions.
const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Component is one metric's (or the consistency dimension's) contribution to
// the overall score. Components are recomputed on every pass, never persisted
// as-is.
type Component struct {
	Name            string   `json:"name"`
	Score           int      `json:"score"`
	Weight          float64  `json:"weight"`
	Status          Status   `json:"status"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Result is the outcome of one scoring pass.
type Result struct {
	OverallScore int         `json:"overall_score"`
	Grade        Grade       `json:"grade"`
	Components   []Component `json:"components"`
	Trend        Trend       `json:"trend"`
	LastUpdated  time.Time   `json:"last_updated"`
}

// Options carries the injected clock and optional score history.
// The zero value means wall-clock now and no history (trend reads stable).
type Options struct {
	// Now is the reference instant for the lookback cutoff and consistency
	// window. Zero means time.Now().
	Now time.Time

	// History holds previously computed overall scores, oldest first, used
	// for the trend direction. Nil or empty yields TrendStable.
	History []int
}

// ConsistencyName is the display name of the synthetic consistency component.
const ConsistencyName = "Tracking Consistency"

// consistencyWeight is fixed and independent of the per-type weight table.
const consistencyWeight = 0.2

// unknownTypeWeight is the fallback weight for metric types absent from the
// weight table.
const unknownTypeWeight = 0.1

// typeWeights are the static per-type aggregation weights.
var typeWeights = map[metrics.Type]float64{
	metrics.TypeBloodPressure: 0.25,
	metrics.TypeBloodSugar:    0.25,
	metrics.TypeHeartRate:     0.2,
	metrics.TypeWeight:        0.15,
	metrics.TypeSteps:         0.15,
}

// WeightFor returns the aggregation weight for a metric type, defaulting to
// 0.1 for unknown types.
func WeightFor(t metrics.Type) float64 {
	if w, ok := typeWeights[t]; ok {
		return w
	}
	return unknownTypeWeight
}
