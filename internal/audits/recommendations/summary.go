package recommendations

import "fmt"

// ExecutiveSummary is the aggregate health view derived from a ranked
// recommendation list. Recomputed whenever the list changes.
type ExecutiveSummary struct {
	OverallHealth        string          `json:"overallHealth"`
	CriticalIssues       int             `json:"criticalIssues"`
	HighPriorityIssues   int             `json:"highPriorityIssues"`
	QuickWins            int             `json:"quickWins"`
	EstimatedImprovement string          `json:"estimatedImprovement"`
	TopRecommendation    *Recommendation `json:"topRecommendation,omitempty"`
}

// Summarize derives the executive summary from a sorted recommendation
// list and the overall score. The health breakpoints (70/50) are the
// only user-facing interpretation of the numeric score.
func Summarize(recs []Recommendation, overallScore int) ExecutiveSummary {
	summary := ExecutiveSummary{
		OverallHealth: healthLabel(overallScore),
	}

	for i := range recs {
		switch {
		case recs[i].PriorityScore >= priorityCriticalFloor:
			summary.CriticalIssues++
		case recs[i].PriorityScore >= priorityHighFloor:
			summary.HighPriorityIssues++
		}
		if recs[i].Effort == EffortQuickWin || recs[i].Effort == EffortEasy {
			summary.QuickWins++
		}
	}

	// Rough guidance number, not a measured forecast.
	improvement := 3 * len(recs)
	if improvement > 30 {
		improvement = 30
	}
	summary.EstimatedImprovement = fmt.Sprintf("+%d%% potential ranking improvement", improvement)

	if len(recs) > 0 {
		top := recs[0]
		summary.TopRecommendation = &top
	}
	return summary
}

func healthLabel(score int) string {
	switch {
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
