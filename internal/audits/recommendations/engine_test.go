package recommendations

import (
	"sort"
	"testing"

	"seopulse-backend/internal/scoring"
)

func contentResult(subs ...scoring.SubScore) scoring.CategoryResult {
	return scoring.CategoryResult{Category: scoring.CategoryContent, SubScores: subs}
}

func technicalResult(subs ...scoring.SubScore) scoring.CategoryResult {
	return scoring.CategoryResult{Category: scoring.CategoryTechnical, SubScores: subs}
}

func TestGenerateTriggersBelowThreshold(t *testing.T) {
	recs := Generate(contentResult(scoring.SubScore{Name: "meta_title", Value: 69}))
	if len(recs) != 1 {
		t.Fatalf("expected one recommendation at 69, got %d", len(recs))
	}
	if recs[0].Issue != "Meta Title Optimization" {
		t.Fatalf("unexpected issue: %q", recs[0].Issue)
	}
	if recs[0].Category != scoring.CategoryContent {
		t.Fatalf("unexpected category: %q", recs[0].Category)
	}

	if recs := Generate(contentResult(scoring.SubScore{Name: "meta_title", Value: 70})); len(recs) != 0 {
		t.Fatalf("expected no recommendation at the threshold, got %d", len(recs))
	}
}

func TestGenerateSkipsUnmeasuredSubScores(t *testing.T) {
	// A sub-score omitted for lack of data must not fire its catalog
	// entry, even though a zero value would.
	recs := Generate(contentResult())
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations without measurements, got %d", len(recs))
	}
}

func TestGenerateEscalatesSeverity(t *testing.T) {
	mild := Generate(contentResult(scoring.SubScore{Name: "meta_title", Value: 55}))
	if mild[0].Impact != ImpactHigh {
		t.Fatalf("expected high impact at 55, got %q", mild[0].Impact)
	}

	severe := Generate(contentResult(scoring.SubScore{Name: "meta_title", Value: 30}))
	if severe[0].Impact != ImpactCritical {
		t.Fatalf("expected critical impact at 30, got %q", severe[0].Impact)
	}
	if severe[0].PriorityScore <= mild[0].PriorityScore {
		t.Fatalf("escalated severity must raise priority: %v <= %v",
			severe[0].PriorityScore, mild[0].PriorityScore)
	}
}

func TestGenerateSortsByPriorityDescending(t *testing.T) {
	recs := Generate(
		contentResult(
			scoring.SubScore{Name: "meta_title", Value: 50},
			scoring.SubScore{Name: "structured_data", Value: 10},
		),
		technicalResult(
			scoring.SubScore{Name: "https", Value: 40},
			scoring.SubScore{Name: "hreflang", Value: 10},
		),
	)
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}
	if !sort.SliceIsSorted(recs, func(i, j int) bool {
		return recs[i].PriorityScore > recs[j].PriorityScore
	}) {
		t.Fatalf("recommendations are not sorted by priority")
	}
	// https: critical impact, easy effort -> 5.0 tops the list.
	if recs[0].Issue != "HTTPS Migration" {
		t.Fatalf("expected https fix first, got %q", recs[0].Issue)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	input := []scoring.CategoryResult{
		contentResult(
			scoring.SubScore{Name: "meta_title", Value: 20},
			scoring.SubScore{Name: "meta_description", Value: 20},
			scoring.SubScore{Name: "h1_tags", Value: 20},
		),
	}

	first := Generate(input...)
	for i := 0; i < 5; i++ {
		again := Generate(input...)
		for j := range first {
			if first[j].Issue != again[j].Issue {
				t.Fatalf("run %d: order changed at %d: %q vs %q", i, j, first[j].Issue, again[j].Issue)
			}
		}
	}
}

func TestPriorityFormula(t *testing.T) {
	cases := []struct {
		impact Impact
		effort Effort
		want   float64
	}{
		{ImpactCritical, EffortQuickWin, 10},
		{ImpactInformational, EffortMajor, 0.4},
		{ImpactHigh, EffortModerate, 2.67},
		{ImpactMedium, EffortEasy, 3},
		{Impact("unknown"), Effort("unknown"), 2}, // medium/moderate fallback
	}
	for _, tc := range cases {
		if got := Priority(tc.impact, tc.effort); got != tc.want {
			t.Fatalf("Priority(%s, %s) = %v, want %v", tc.impact, tc.effort, got, tc.want)
		}
	}
}

func TestPriorityLabelBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{10, "Critical Priority"},
		{4.0, "Critical Priority"},
		{3.99, "High Priority"},
		{3.0, "High Priority"},
		{2.5, "Medium Priority"},
		{2.0, "Medium Priority"},
		{1.99, "Low Priority"},
		{0.4, "Low Priority"},
	}
	for _, tc := range cases {
		if got := PriorityLabel(tc.score); got != tc.want {
			t.Fatalf("PriorityLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestLabelsRenderForDisplay(t *testing.T) {
	if got := EffortQuickWin.Label(); got != "Quick Win" {
		t.Fatalf("unexpected effort label: %q", got)
	}
	if got := ImpactCritical.Label(); got != "Critical" {
		t.Fatalf("unexpected impact label: %q", got)
	}
}
