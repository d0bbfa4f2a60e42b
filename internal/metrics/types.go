// Package metrics defines health metric readings and value parsing.
package metrics

import "time"

// Type identifies a kind of health metric. Unknown values are allowed:
// readings of unrecognized types are stored but excluded from scoring.
type Type string

// Known metric types.
const (
	TypeBloodPressure Type = "blood_pressure"
	TypeBloodSugar    Type = "blood_sugar"
	TypeHeartRate     Type = "heart_rate"
	TypeWeight        Type = "weight"
	TypeSteps         Type = "steps"
)

// KnownTypes lists the metric types the scorer understands, in display order.
var KnownTypes = []Type{
	TypeBloodPressure,
	TypeBloodSugar,
	TypeHeartRate,
	TypeWeight,
	TypeSteps,
}

// Reading is a single timestamped observation of one metric for one user.
// Value is a free-form, metric-specific encoding ("118/76" for blood
// pressure, "72 bpm" or "72" for everything else).
type Reading struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Type       Type      `json:"type"`
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

// IsKnown reports whether t is one of the scorable metric types.
func (t Type) IsKnown() bool {
	switch t {
	case TypeBloodPressure, TypeBloodSugar, TypeHeartRate, TypeWeight, TypeSteps:
		return true
	}
	return false
}
