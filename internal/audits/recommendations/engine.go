package recommendations

import (
	"sort"

	"seopulse-backend/internal/scoring"
)

// Generate maps weak sub-scores to catalog remediations and ranks them
// by priority. Each sub-score below its trigger threshold yields at most
// one recommendation; a fully healthy table yields an empty list, which
// callers must read as "site healthy", not engine failure.
func Generate(results ...scoring.CategoryResult) []Recommendation {
	values := make(map[string]int)
	for _, res := range results {
		for _, sub := range res.SubScores {
			values[sub.Name] = sub.Value
		}
	}

	out := make([]Recommendation, 0, len(catalog))
	for _, entry := range catalog {
		value, measured := values[entry.subScore]
		if !measured || value >= entry.trigger {
			continue
		}
		impact := entry.impact
		if entry.severeBelow > 0 && value < entry.severeBelow {
			impact = entry.severeImpact
		}
		out = append(out, Recommendation{
			Category:       entry.category,
			Issue:          entry.issue,
			Description:    entry.description,
			Recommendation: entry.recommendation,
			Impact:         impact,
			Effort:         entry.effort,
			PriorityScore:  Priority(impact, entry.effort),
			Steps:          entry.steps,
			Tools:          entry.tools,
			EstimatedTime:  entry.estimatedTime,
			ExpectedImpact: entry.expectedImpact,
		})
	}

	// Stable sort keeps catalog order for equal priorities.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriorityScore > out[j].PriorityScore
	})
	return out
}
