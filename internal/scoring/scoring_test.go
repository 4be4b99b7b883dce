package scoring

import (
	"strings"
	"testing"

	"seopulse-backend/internal/signals"
)

func table(t *testing.T, header []string, rows [][]string) *signals.Table {
	t.Helper()
	return signals.NewTable(header, rows)
}

func TestContentMetaTitleShare(t *testing.T) {
	rows := make([][]string, 0, 10)
	for i := 0; i < 8; i++ {
		rows = append(rows, []string{"Home", "40"})
	}
	rows = append(rows, []string{"", ""}, []string{"", ""})

	result := ScoreContent(table(t, []string{"Title 1", "Title 1 Length"}, rows))

	if len(result.SubScores) != 1 {
		t.Fatalf("expected only meta_title to resolve, got %d sub-scores", len(result.SubScores))
	}
	if got, _ := result.SubScoreValue("meta_title"); got != 80 {
		t.Fatalf("expected meta_title=80, got %d", got)
	}
	if result.Score != 80 {
		t.Fatalf("expected category score 80, got %d", result.Score)
	}
	if len(result.Weaknesses) != 0 {
		t.Fatalf("80 is above the floor, expected no weaknesses: %v", result.Weaknesses)
	}
}

func TestContentMalformedLengthSkipsRow(t *testing.T) {
	result := ScoreContent(table(t,
		[]string{"Title 1", "Title 1 Length"},
		[][]string{
			{"Home", "40"},
			{"About", "n/a"},
			{"", ""},
		},
	))

	// Malformed row drops out of the fraction entirely; the blank row
	// still counts as a failure.
	if got, _ := result.SubScoreValue("meta_title"); got != 50 {
		t.Fatalf("expected meta_title=50, got %d", got)
	}
}

func TestContentBlankLengthFails(t *testing.T) {
	result := ScoreContent(table(t,
		[]string{"Title 1", "Title 1 Length"},
		[][]string{{"Home", ""}},
	))

	if got, _ := result.SubScoreValue("meta_title"); got != 0 {
		t.Fatalf("blank numeric cell must fail the predicate, got %d", got)
	}
	if !hasWeakness(result, "Short or missing meta titles.") {
		t.Fatalf("expected meta title weakness, got %v", result.Weaknesses)
	}
}

func TestContentRoundsFraction(t *testing.T) {
	result := ScoreContent(table(t,
		[]string{"H1-1"},
		[][]string{{"Welcome"}, {"About"}, {""}},
	))

	if got, _ := result.SubScoreValue("h1_tags"); got != 67 {
		t.Fatalf("expected 2/3 to round to 67, got %d", got)
	}
}

func TestContentScoreMonotonicInPassingRows(t *testing.T) {
	prev := -1
	for pass := 0; pass <= 5; pass++ {
		rows := make([][]string, 5)
		for i := range rows {
			if i < pass {
				rows[i] = []string{"Heading"}
			} else {
				rows[i] = []string{""}
			}
		}
		result := ScoreContent(table(t, []string{"H1-1"}, rows))
		if result.Score < prev {
			t.Fatalf("score decreased from %d to %d at pass=%d", prev, result.Score, pass)
		}
		prev = result.Score
	}
}

func TestTechnicalStatusCodeWeakness(t *testing.T) {
	rows := make([][]string, 0, 10)
	for i := 0; i < 6; i++ {
		rows = append(rows, []string{"200"})
	}
	for i := 0; i < 4; i++ {
		rows = append(rows, []string{"500"})
	}

	result := ScoreTechnical(table(t, []string{"Status Code"}, rows))

	if got, _ := result.SubScoreValue("status_codes"); got != 60 {
		t.Fatalf("expected status_codes=60, got %d", got)
	}
	if !hasWeakness(result, "Issues with HTTP status codes.") {
		t.Fatalf("60 is under the 70 floor, expected weakness: %v", result.Weaknesses)
	}
}

func TestTechnicalIndexabilityDialects(t *testing.T) {
	sf := ScoreTechnical(table(t,
		[]string{"Indexability"},
		[][]string{{"Indexable"}, {"Non-Indexable"}},
	))
	if got, _ := sf.SubScoreValue("indexability"); got != 50 {
		t.Fatalf("Indexability dialect: expected 50, got %d", got)
	}

	generic := ScoreTechnical(table(t,
		[]string{"Indexable"},
		[][]string{{"Yes"}, {"No"}},
	))
	if got, _ := generic.SubScoreValue("indexability"); got != 50 {
		t.Fatalf("Indexable dialect: expected 50, got %d", got)
	}
}

func TestTechnicalHTTPSPrefix(t *testing.T) {
	result := ScoreTechnical(table(t,
		[]string{"Address"},
		[][]string{
			{"https://example.com/"},
			{"HTTPS://EXAMPLE.COM/ABOUT"},
			{"http://example.com/old"},
		},
	))

	if got, _ := result.SubScoreValue("https"); got != 67 {
		t.Fatalf("expected https=67, got %d", got)
	}
}

func TestUXCoreWebVitals(t *testing.T) {
	result := ScoreUX(table(t,
		[]string{"Largest Contentful Paint Time (ms)", "Cumulative Layout Shift"},
		[][]string{
			{"1800", "0.05"},
			{"3200", "0.30"},
		},
	))

	if got, _ := result.SubScoreValue("largest_contentful_paint"); got != 50 {
		t.Fatalf("expected LCP=50, got %d", got)
	}
	if got, _ := result.SubScoreValue("cumulative_layout_shift"); got != 50 {
		t.Fatalf("expected CLS=50, got %d", got)
	}
}

func TestInsufficientDataCategory(t *testing.T) {
	empty := table(t, []string{"Unrelated"}, [][]string{{"x"}})

	for _, result := range []CategoryResult{ScoreContent(empty), ScoreTechnical(empty), ScoreUX(empty)} {
		if !result.InsufficientData {
			t.Fatalf("%s: expected insufficient data", result.Category)
		}
		if result.Score != 0 {
			t.Fatalf("%s: expected score 0, got %d", result.Category, result.Score)
		}
		if len(result.Weaknesses) != 1 || !strings.HasPrefix(result.Weaknesses[0], "Insufficient data to assess") {
			t.Fatalf("%s: expected insufficient-data weakness, got %v", result.Category, result.Weaknesses)
		}
	}
}

func TestOverallWeighting(t *testing.T) {
	got := Overall(
		CategoryResult{Category: CategoryContent, Score: 80, SubScores: []SubScore{{Name: "meta_title", Value: 80}}},
		CategoryResult{Category: CategoryTechnical, Score: 60, SubScores: []SubScore{{Name: "status_codes", Value: 60}}},
		CategoryResult{Category: CategoryUX, Score: 50, SubScores: []SubScore{{Name: "mobile_friendly", Value: 50}}},
	)
	if got != 66 {
		t.Fatalf("expected 0.4*80 + 0.4*60 + 0.2*50 = 66, got %d", got)
	}
}

func TestOverallRenormalizesMissingCategory(t *testing.T) {
	got := Overall(
		CategoryResult{Category: CategoryContent, Score: 80},
		CategoryResult{Category: CategoryTechnical, Score: 60},
		CategoryResult{Category: CategoryUX, InsufficientData: true},
	)
	if got != 70 {
		t.Fatalf("expected (32+24)/0.8 = 70, got %d", got)
	}
}

func TestOverallMeasuredZeroStillCounts(t *testing.T) {
	got := Overall(
		CategoryResult{Category: CategoryContent, Score: 0},
		CategoryResult{Category: CategoryTechnical, Score: 60},
		CategoryResult{Category: CategoryUX, Score: 50},
	)
	if got != 34 {
		t.Fatalf("expected measured zero to drag the overall to 34, got %d", got)
	}
}

func TestOverallAllMissing(t *testing.T) {
	got := Overall(
		CategoryResult{Category: CategoryContent, InsufficientData: true},
		CategoryResult{Category: CategoryTechnical, InsufficientData: true},
		CategoryResult{Category: CategoryUX, InsufficientData: true},
	)
	if got != 0 {
		t.Fatalf("expected 0 when no category has data, got %d", got)
	}
}

func hasWeakness(result CategoryResult, want string) bool {
	for _, w := range result.Weaknesses {
		if w == want {
			return true
		}
	}
	return false
}
