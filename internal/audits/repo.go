package audits

import "context"

// Repo defines persistence operations for audits.
type Repo interface {
	Create(ctx context.Context, audit Audit) error
	Update(ctx context.Context, audit Audit) error
	GetByID(ctx context.Context, ownerID, auditID string) (Audit, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Audit, error)
}
