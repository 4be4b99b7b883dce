package audits

import "time"

type auditResponse struct {
	AuditID     string      `json:"auditId"`
	SiteName    string      `json:"siteName"`
	Status      string      `json:"status"`
	Error       string      `json:"error,omitempty"`
	Report      *SiteReport `json:"report,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

func toResponse(a Audit) auditResponse {
	return auditResponse{
		AuditID:     a.ID,
		SiteName:    a.SiteName,
		Status:      a.Status,
		Error:       a.Error,
		Report:      a.Report,
		CreatedAt:   a.CreatedAt,
		CompletedAt: a.CompletedAt,
	}
}

type auditSummary struct {
	AuditID      string     `json:"auditId"`
	SiteName     string     `json:"siteName"`
	Status       string     `json:"status"`
	OverallScore *int       `json:"overallScore,omitempty"`
	Health       string     `json:"health,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func toSummary(a Audit) auditSummary {
	s := auditSummary{
		AuditID:     a.ID,
		SiteName:    a.SiteName,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		CompletedAt: a.CompletedAt,
	}
	if a.Report != nil {
		score := a.Report.OverallScore
		s.OverallScore = &score
		s.Health = a.Report.Summary.OverallHealth
	}
	return s
}

type batchItemResponse struct {
	FileName string         `json:"fileName"`
	Error    string         `json:"error,omitempty"`
	Audit    *auditResponse `json:"audit,omitempty"`
}
