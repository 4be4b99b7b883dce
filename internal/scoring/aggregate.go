package scoring

import "math"

// Category weights for the overall score. Content and technical health
// dominate; user experience refines.
const (
	weightContent   = 0.4
	weightTechnical = 0.4
	weightUX        = 0.2
)

// Overall combines the three category scores into one 0-100 score.
// The weighted mean is normalized by the weights of categories that
// produced at least one measured sub-score, so a category that is absent
// from the export (no data) is excluded rather than counted as zero.
// A category that scored 0 on real data still drags the overall down.
func Overall(content, technical, ux CategoryResult) int {
	sum, weightSum := 0.0, 0.0
	for _, item := range []struct {
		result CategoryResult
		weight float64
	}{
		{content, weightContent},
		{technical, weightTechnical},
		{ux, weightUX},
	} {
		if item.result.InsufficientData {
			continue
		}
		sum += float64(item.result.Score) * item.weight
		weightSum += item.weight
	}
	if weightSum == 0 {
		return 0
	}
	return int(math.Round(sum / weightSum))
}
