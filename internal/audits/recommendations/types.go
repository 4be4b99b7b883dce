package recommendations

import (
	"math"
	"strings"
)

// Impact classifies how much a fix is expected to move rankings.
type Impact string

const (
	ImpactCritical      Impact = "critical"
	ImpactHigh          Impact = "high"
	ImpactMedium        Impact = "medium"
	ImpactLow           Impact = "low"
	ImpactInformational Impact = "informational"
)

// Effort classifies the typical real-world remediation cost. It is a
// fixed property of each catalog entry, never derived from the data.
type Effort string

const (
	EffortQuickWin Effort = "quick_win" // < 1 hour
	EffortEasy     Effort = "easy"     // 1-4 hours
	EffortModerate Effort = "moderate" // 1-2 days
	EffortComplex  Effort = "complex"  // 1 week
	EffortMajor    Effort = "major"    // > 1 week
)

var impactWeights = map[Impact]int{
	ImpactCritical:      5,
	ImpactHigh:          4,
	ImpactMedium:        3,
	ImpactLow:           2,
	ImpactInformational: 1,
}

var effortWeights = map[Effort]int{
	EffortQuickWin: 1,
	EffortEasy:     2,
	EffortModerate: 3,
	EffortComplex:  4,
	EffortMajor:    5,
}

// Recommendation is one remediation entry triggered by a weak sub-score.
// Immutable after creation except for list reordering.
type Recommendation struct {
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Impact         Impact   `json:"impact"`
	Effort         Effort   `json:"effort"`
	PriorityScore  float64  `json:"priorityScore"`
	Steps          []string `json:"steps"`
	Tools          []string `json:"tools"`
	EstimatedTime  string   `json:"estimatedTime"`
	ExpectedImpact string   `json:"expectedImpact"`
}

// Priority computes the impact/effort ratio used for ranking. Higher
// impact and lower effort rank first; the scale is unbounded above
// (critical + quick_win = 10, informational + major = 0.4).
func Priority(impact Impact, effort Effort) float64 {
	iw, ok := impactWeights[impact]
	if !ok {
		iw = impactWeights[ImpactMedium]
	}
	ew, ok := effortWeights[effort]
	if !ok {
		ew = effortWeights[EffortModerate]
	}
	return math.Round(float64(iw*2)/float64(ew)*100) / 100
}

// Priority display bands. The same breakpoints drive the executive
// summary counts, so the two views can never disagree.
const (
	priorityCriticalFloor = 4.0
	priorityHighFloor     = 3.0
	priorityMediumFloor   = 2.0
)

// PriorityLabel converts a priority score to its display band.
func PriorityLabel(score float64) string {
	switch {
	case score >= priorityCriticalFloor:
		return "Critical Priority"
	case score >= priorityHighFloor:
		return "High Priority"
	case score >= priorityMediumFloor:
		return "Medium Priority"
	default:
		return "Low Priority"
	}
}

// Label renders the impact for display ("critical" -> "Critical").
func (i Impact) Label() string {
	return titleWords(string(i))
}

// Label renders the effort for display ("quick_win" -> "Quick Win").
func (e Effort) Label() string {
	return titleWords(string(e))
}

func titleWords(raw string) string {
	words := strings.Split(strings.ReplaceAll(raw, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
