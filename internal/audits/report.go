package audits

import (
	"strings"

	"seopulse-backend/internal/audits/recommendations"
	"seopulse-backend/internal/scoring"
	"seopulse-backend/internal/signals"
)

// BuildReport runs the scoring and recommendation engine over one loaded
// table. Pure function: the same table always yields the same report.
func BuildReport(site string, t *signals.Table) SiteReport {
	content := scoring.ScoreContent(t)
	technical := scoring.ScoreTechnical(t)
	ux := scoring.ScoreUX(t)
	overall := scoring.Overall(content, technical, ux)
	recs := recommendations.Generate(content, technical, ux)

	return SiteReport{
		Site:            site,
		Content:         content,
		Technical:       technical,
		UX:              ux,
		OverallScore:    overall,
		Recommendations: recs,
		Summary:         recommendations.Summarize(recs, overall),
	}
}

// SummarizeWeaknesses renders a category's weakness list for display
// and export.
func SummarizeWeaknesses(weaknesses []string) string {
	if len(weaknesses) == 0 {
		return "No major issues detected."
	}
	lines := make([]string, len(weaknesses))
	for i, w := range weaknesses {
		lines[i] = "- " + w
	}
	return strings.Join(lines, "\n")
}
