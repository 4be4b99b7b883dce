package audits

import (
	"time"

	"seopulse-backend/internal/audits/recommendations"
	"seopulse-backend/internal/scoring"
)

// Audit statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Audit represents one analyzed crawl export owned by a caller.
type Audit struct {
	ID          string
	OwnerID     string
	SiteName    string
	SourceKey   string
	Status      string
	Error       string
	Report      *SiteReport
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// SiteReport is the full engine output for one table: three category
// results, the weighted overall score, the ranked recommendation list,
// and the derived executive summary. Reports for different tables are
// independent; they are only combined for side-by-side ranking.
type SiteReport struct {
	Site            string                           `json:"site"`
	Content         scoring.CategoryResult           `json:"content"`
	Technical       scoring.CategoryResult           `json:"technical"`
	UX              scoring.CategoryResult           `json:"ux"`
	OverallScore    int                              `json:"overallScore"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	Summary         recommendations.ExecutiveSummary `json:"summary"`
}
