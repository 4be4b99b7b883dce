package audits

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// database is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Audit // ownerID -> audits
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Audit)}
}

// Create stores a new audit for an owner.
func (r *MemoryRepo) Create(ctx context.Context, audit Audit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[audit.OwnerID] = append(r.data[audit.OwnerID], audit)
	return nil
}

// Update replaces an existing audit by ID.
func (r *MemoryRepo) Update(ctx context.Context, audit Audit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[audit.OwnerID]
	for i := range items {
		if items[i].ID == audit.ID {
			items[i] = audit
			return nil
		}
	}
	return ErrNotFound
}

// GetByID returns an audit by ID for an owner.
func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, auditID string) (Audit, error) {
	if err := ctx.Err(); err != nil {
		return Audit{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.data[ownerID] {
		if item.ID == auditID {
			return item, nil
		}
	}
	return Audit{}, ErrNotFound
}

// ListByOwner returns audits for an owner, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Audit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := r.data[ownerID]
	r.mu.RUnlock()

	if len(owned) == 0 || offset >= len(owned) {
		return []Audit{}, nil
	}

	items := make([]Audit, len(owned))
	copy(items, owned)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end], nil
}
