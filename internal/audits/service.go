package audits

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"seopulse-backend/internal/queue"
	"seopulse-backend/internal/shared/metrics"
	"seopulse-backend/internal/shared/storage/object"
	"seopulse-backend/internal/shared/telemetry"
	"seopulse-backend/internal/signals"
)

const defaultBatchConcurrency = 4

// Service contains business logic for audits. Store and Queue are
// optional: without a store raw exports are not retained, without a
// queue asynchronous audits are rejected.
type Service struct {
	Repo        Repo
	Store       object.ObjectStore
	Queue       queue.Client
	Concurrency int
}

// BatchFile is one file of a multi-file upload. Open is called at most
// once, from the worker goroutine that processes the file.
type BatchFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// BatchItem is the per-file outcome of a batch analysis.
type BatchItem struct {
	FileName string
	Audit    Audit
	Err      error
}

// AnalyzeUpload ingests one crawl export, runs the engine synchronously,
// and persists the resulting audit. An unreadable table yields a failed
// audit and an error; the failure is recorded so batch callers can
// report it per file without aborting their remaining files.
func (s *Service) AnalyzeUpload(ctx context.Context, ownerID, fileName string, r io.Reader) (Audit, error) {
	if strings.TrimSpace(fileName) == "" {
		return Audit{}, ErrInvalidInput
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Audit{}, fmt.Errorf("read upload: %w", err)
	}

	audit := Audit{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		SiteName:  siteName(fileName),
		Status:    StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}

	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, ownerID, fileName, bytes.NewReader(raw))
		if err != nil {
			telemetry.Warn("audits.store.save_failed", map[string]any{
				"owner_id": ownerID,
				"file":     fileName,
				"err":      err.Error(),
			})
		} else {
			audit.SourceKey = key
		}
	}

	metrics.IncAuditStarted()
	start := time.Now()

	table, err := signals.Load(bytes.NewReader(raw))
	if err != nil {
		audit.Status = StatusFailed
		audit.Error = err.Error()
		now := time.Now().UTC()
		audit.CompletedAt = &now
		metrics.IncAuditFailed()
		if repoErr := s.Repo.Create(ctx, audit); repoErr != nil {
			return Audit{}, repoErr
		}
		return audit, err
	}

	report := BuildReport(audit.SiteName, table)
	audit.Report = &report
	audit.Status = StatusCompleted
	now := time.Now().UTC()
	audit.CompletedAt = &now

	if err := s.Repo.Create(ctx, audit); err != nil {
		return Audit{}, err
	}

	metrics.IncAuditCompleted()
	metrics.ObserveAuditDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("audits.completed", map[string]any{
		"audit_id": audit.ID,
		"owner_id": ownerID,
		"site":     audit.SiteName,
		"rows":     table.Len(),
		"overall":  report.OverallScore,
	})
	return audit, nil
}

// AnalyzeBatch fans a multi-file upload out over a bounded worker pool.
// Each file's analysis is independent; one unreadable file never stops
// the rest. Results keep the input order.
func (s *Service) AnalyzeBatch(ctx context.Context, ownerID string, files []BatchFile) []BatchItem {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	items := make([]BatchItem, len(files))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file BatchFile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items[i].FileName = file.Name
			rc, err := file.Open()
			if err != nil {
				items[i].Err = fmt.Errorf("open %s: %w", file.Name, err)
				return
			}
			defer rc.Close()

			audit, err := s.AnalyzeUpload(ctx, ownerID, file.Name, rc)
			items[i].Audit = audit
			items[i].Err = err
		}(i, file)
	}
	wg.Wait()
	return items
}

// CreateFromS3 registers an already-uploaded export and queues it for
// asynchronous analysis by the worker process.
func (s *Service) CreateFromS3(ctx context.Context, ownerID, s3Key, fileName string) (Audit, error) {
	if strings.TrimSpace(s3Key) == "" || strings.TrimSpace(fileName) == "" {
		return Audit{}, ErrInvalidInput
	}
	if s.Queue == nil {
		return Audit{}, ErrQueueNotConfigured
	}

	audit := Audit{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		SiteName:  siteName(fileName),
		SourceKey: s3Key,
		Status:    StatusQueued,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, audit); err != nil {
		return Audit{}, err
	}

	msg := queue.Message{
		AuditID:    audit.ID,
		OwnerID:    ownerID,
		EnqueuedAt: audit.CreatedAt.Format(time.RFC3339),
		Version:    1,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		audit.Status = StatusFailed
		audit.Error = "enqueue failed"
		_ = s.Repo.Update(ctx, audit)
		return Audit{}, fmt.Errorf("enqueue audit: %w", err)
	}
	return audit, nil
}

// ProcessAudit runs a queued audit: it opens the stored export, runs
// the engine, and records the outcome. Called by the worker process.
func (s *Service) ProcessAudit(ctx context.Context, ownerID, auditID string) error {
	audit, err := s.Repo.GetByID(ctx, ownerID, auditID)
	if err != nil {
		return err
	}
	if audit.Status != StatusQueued {
		return ErrNotQueued
	}
	if s.Store == nil || audit.SourceKey == "" {
		return fmt.Errorf("audit %s has no stored source", auditID)
	}

	audit.Status = StatusProcessing
	if err := s.Repo.Update(ctx, audit); err != nil {
		return err
	}

	metrics.IncAuditStarted()
	start := time.Now()

	rc, err := s.Store.Open(ctx, audit.SourceKey)
	if err != nil {
		return s.failAudit(ctx, audit, fmt.Errorf("open source: %w", err))
	}
	defer rc.Close()

	table, err := signals.Load(rc)
	if err != nil {
		return s.failAudit(ctx, audit, err)
	}

	report := BuildReport(audit.SiteName, table)
	audit.Report = &report
	audit.Status = StatusCompleted
	audit.Error = ""
	now := time.Now().UTC()
	audit.CompletedAt = &now
	if err := s.Repo.Update(ctx, audit); err != nil {
		return err
	}

	metrics.IncAuditCompleted()
	metrics.ObserveAuditDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return nil
}

func (s *Service) failAudit(ctx context.Context, audit Audit, cause error) error {
	metrics.IncAuditFailed()
	audit.Status = StatusFailed
	audit.Error = cause.Error()
	now := time.Now().UTC()
	audit.CompletedAt = &now
	if err := s.Repo.Update(ctx, audit); err != nil {
		return err
	}
	return cause
}

// Get returns one audit.
func (s *Service) Get(ctx context.Context, ownerID, auditID string) (Audit, error) {
	if auditID == "" {
		return Audit{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, ownerID, auditID)
}

// List returns an owner's audits, newest first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Audit, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

// ComparisonRow is one line of the side-by-side ranking view.
type ComparisonRow struct {
	Rank           int    `json:"rank"`
	Site           string `json:"site"`
	ContentScore   int    `json:"contentScore"`
	TechnicalScore int    `json:"technicalScore"`
	UXScore        int    `json:"uxScore"`
	OverallScore   int    `json:"overallScore"`
	HealthStatus   string `json:"healthStatus"`
	CriticalIssues int    `json:"criticalIssues"`
	QuickWins      int    `json:"quickWins"`
}

// Compare ranks completed audits by overall score, best first. Audits
// without a report are skipped.
func (s *Service) Compare(ctx context.Context, ownerID string, auditIDs []string) ([]ComparisonRow, error) {
	rows := make([]ComparisonRow, 0, len(auditIDs))
	for _, id := range auditIDs {
		audit, err := s.Repo.GetByID(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		if audit.Report == nil {
			continue
		}
		report := audit.Report
		rows = append(rows, ComparisonRow{
			Site:           report.Site,
			ContentScore:   report.Content.Score,
			TechnicalScore: report.Technical.Score,
			UXScore:        report.UX.Score,
			OverallScore:   report.OverallScore,
			HealthStatus:   report.Summary.OverallHealth,
			CriticalIssues: report.Summary.CriticalIssues,
			QuickWins:      report.Summary.QuickWins,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OverallScore > rows[j].OverallScore
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}

func siteName(fileName string) string {
	name := strings.TrimSpace(fileName)
	for _, ext := range []string{".csv", ".xlsx"} {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" {
		return "site"
	}
	return name
}
