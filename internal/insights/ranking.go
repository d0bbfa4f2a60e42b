package insights

import "sort"

// Rank sorts insights by ImpactScore in descending order.
func Rank(insights []Insight) []Insight {
	sorted := make([]Insight, len(insights))
	copy(sorted, insights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ImpactScore > sorted[j].ImpactScore
	})
	return sorted
}

// Impact scores an insight by how many overall points it could recover,
// scaled by the component's aggregation weight. pointsBelow is the gap
// between the component's score and a healthy 80.
func Impact(pointsBelow int, weight float64) float64 {
	if pointsBelow <= 0 {
		return 0
	}
	return float64(pointsBelow) * weight
}
