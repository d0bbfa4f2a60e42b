package score

// trendWindow is how many recent history entries feed the moving average.
const trendWindow = 5

// trendThreshold is the minimum point delta from the moving average before
// the trend leaves stable.
const trendThreshold = 2.0

// TrendFor compares the current overall score against a weighted moving
// average of the most recent history entries (linear weights, newest
// heaviest). Without history the trend is stable.
func TrendFor(overall int, history []int) Trend {
	if len(history) == 0 {
		return TrendStable
	}

	recent := history
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	var weighted, total float64
	for i, s := range recent {
		w := float64(i + 1)
		weighted += float64(s) * w
		total += w
	}
	avg := weighted / total

	delta := float64(overall) - avg
	switch {
	case delta >= trendThreshold:
		return TrendImproving
	case delta <= -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
