// Package insights generates ranked, cross-cutting health suggestions from a
// computed score result. Per-metric clinical recommendations stay inside the
// scoring ladders; insights cover what the ladders cannot see, like missing
// metric types or a declining trend.
package insights

import "github.com/seacliff-health/vitals/internal/score"

// Priority levels for insights.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Insight is an actionable suggestion derived from a scoring pass.
type Insight struct {
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactScore float64 `json:"impact_score"`
}

// Context provides everything insight rules examine: the freshly computed
// result, which known metric types had readings in the window, and the stored
// score history (oldest first).
type Context struct {
	Result       score.Result `json:"result"`
	TrackedTypes []string     `json:"tracked_types"`
	History      []int        `json:"history"`
}

// Rule examines the context and produces zero or more insights.
type Rule func(ctx *Context) []Insight
