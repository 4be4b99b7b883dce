package audits

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"seopulse-backend/internal/audits/recommendations"
)

var exportSummaryHeader = []string{
	"Site", "Content Score", "Technical Score", "UX Score", "Overall Score",
	"Health Status", "Content Weaknesses", "Technical Weaknesses", "UX Weaknesses",
}

var exportRecommendationHeader = []string{
	"Site", "Priority Score", "Priority", "Category", "Issue", "Description",
	"Recommendation", "Impact", "Effort", "Expected Impact", "Estimated Time",
	"Steps", "Tools",
}

// WriteCSV writes the flat report for one or more completed audits: a
// score summary block, a blank separator record, then every
// recommendation ordered site by site. Audits without a report are
// skipped.
func WriteCSV(w io.Writer, auditList []Audit) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportSummaryHeader); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	for _, audit := range auditList {
		report := audit.Report
		if report == nil {
			continue
		}
		row := []string{
			report.Site,
			fmt.Sprintf("%d", report.Content.Score),
			fmt.Sprintf("%d", report.Technical.Score),
			fmt.Sprintf("%d", report.UX.Score),
			fmt.Sprintf("%d", report.OverallScore),
			report.Summary.OverallHealth,
			SummarizeWeaknesses(report.Content.Weaknesses),
			SummarizeWeaknesses(report.Technical.Weaknesses),
			SummarizeWeaknesses(report.UX.Weaknesses),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}

	// A bare empty line would be dropped by CSV readers; pad the
	// separator to the summary width so it survives a round trip.
	if err := cw.Write(make([]string, len(exportSummaryHeader))); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	if err := cw.Write(exportRecommendationHeader); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	for _, audit := range auditList {
		report := audit.Report
		if report == nil {
			continue
		}
		for _, rec := range report.Recommendations {
			row := []string{
				report.Site,
				fmt.Sprintf("%.2f", rec.PriorityScore),
				recommendations.PriorityLabel(rec.PriorityScore),
				rec.Category,
				rec.Issue,
				rec.Description,
				rec.Recommendation,
				rec.Impact.Label(),
				rec.Effort.Label(),
				rec.ExpectedImpact,
				rec.EstimatedTime,
				strings.Join(rec.Steps, " | "),
				strings.Join(rec.Tools, ", "),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
