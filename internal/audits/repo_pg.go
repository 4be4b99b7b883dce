package audits

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Reports are stored as JSONB so
// the engine's output shape can evolve without schema churn.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new audit.
func (r *PGRepo) Create(ctx context.Context, audit Audit) error {
	const query = `
INSERT INTO audits (
    id,
    owner_id,
    site_name,
    source_key,
    status,
    error,
    report,
    created_at,
    completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	report, err := marshalReport(audit.Report)
	if err != nil {
		return err
	}

	var sourceKey sql.NullString
	if audit.SourceKey != "" {
		sourceKey = sql.NullString{String: audit.SourceKey, Valid: true}
	}
	var auditErr sql.NullString
	if audit.Error != "" {
		auditErr = sql.NullString{String: audit.Error, Valid: true}
	}
	var completedAt sql.NullTime
	if audit.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *audit.CompletedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		audit.ID,
		audit.OwnerID,
		audit.SiteName,
		sourceKey,
		audit.Status,
		auditErr,
		report,
		audit.CreatedAt,
		completedAt,
	)
	return err
}

// Update replaces status, error, report, and completion time by ID.
func (r *PGRepo) Update(ctx context.Context, audit Audit) error {
	const query = `
UPDATE audits
SET status = $3, error = $4, report = $5, completed_at = $6
WHERE owner_id = $1 AND id = $2`

	report, err := marshalReport(audit.Report)
	if err != nil {
		return err
	}
	var auditErr sql.NullString
	if audit.Error != "" {
		auditErr = sql.NullString{String: audit.Error, Valid: true}
	}
	var completedAt sql.NullTime
	if audit.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *audit.CompletedAt, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query, audit.OwnerID, audit.ID, audit.Status, auditErr, report, completedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetches an audit by ID for an owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, auditID string) (Audit, error) {
	const query = `
SELECT id, owner_id, site_name, source_key, status, error, report, created_at, completed_at
FROM audits
WHERE owner_id = $1 AND id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, ownerID, auditID)
	audit, err := scanAudit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Audit{}, ErrNotFound
		}
		return Audit{}, err
	}
	return audit, nil
}

// ListByOwner lists audits ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Audit, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, owner_id, site_name, source_key, status, error, report, created_at, completed_at
FROM audits
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Audit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, audit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Audit{}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudit(row rowScanner) (Audit, error) {
	var audit Audit
	var sourceKey sql.NullString
	var auditErr sql.NullString
	var report []byte
	var completedAt sql.NullTime

	if err := row.Scan(
		&audit.ID,
		&audit.OwnerID,
		&audit.SiteName,
		&sourceKey,
		&audit.Status,
		&auditErr,
		&report,
		&audit.CreatedAt,
		&completedAt,
	); err != nil {
		return Audit{}, err
	}

	if sourceKey.Valid {
		audit.SourceKey = sourceKey.String
	}
	if auditErr.Valid {
		audit.Error = auditErr.String
	}
	if completedAt.Valid {
		audit.CompletedAt = &completedAt.Time
	}
	if len(report) > 0 {
		var parsed SiteReport
		if err := json.Unmarshal(report, &parsed); err != nil {
			return Audit{}, fmt.Errorf("decode report: %w", err)
		}
		audit.Report = &parsed
	}
	return audit, nil
}

func marshalReport(report *SiteReport) (any, error) {
	if report == nil {
		return nil, nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}
