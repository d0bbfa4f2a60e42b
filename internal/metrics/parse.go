package metrics

import (
	"strconv"
	"strings"
)

// ParseBloodPressure parses a "systolic/diastolic" value like "118/76".
// Both components must contain digits. ok is false for malformed input.
func ParseBloodPressure(value string) (systolic, diastolic float64, ok bool) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	systolic, ok = ParseNumeric(parts[0])
	if !ok {
		return 0, 0, false
	}
	diastolic, ok = ParseNumeric(parts[1])
	if !ok {
		return 0, 0, false
	}
	return systolic, diastolic, true
}

// ParseNumeric extracts a numeric magnitude from a free-form value string by
// stripping everything except digits and the decimal point, so "72 bpm" and
// "8,500 steps" both parse. ok is false when no digits remain.
func ParseNumeric(value string) (float64, bool) {
	var sb strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// DisplayName converts a metric type to its human-readable form:
// underscore-separated words, space-joined, each word capitalized.
func DisplayName(t Type) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
