package audits

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedAudit(id, owner string, createdAt time.Time) Audit {
	return Audit{
		ID:        id,
		OwnerID:   owner,
		SiteName:  "site-" + id,
		Status:    StatusCompleted,
		CreatedAt: createdAt,
	}
}

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	audit := seedAudit("a1", "guest:1", time.Now().UTC())
	if err := repo.Create(ctx, audit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "guest:1", "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SiteName != "site-a1" {
		t.Fatalf("unexpected audit: %+v", got)
	}
}

func TestMemoryRepoOwnerIsolation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, seedAudit("a1", "guest:1", time.Now().UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.GetByID(ctx, "guest:2", "a1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong owner, got %v", err)
	}
}

func TestMemoryRepoUpdate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	audit := seedAudit("a1", "guest:1", time.Now().UTC())
	audit.Status = StatusQueued
	if err := repo.Create(ctx, audit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	audit.Status = StatusCompleted
	if err := repo.Update(ctx, audit); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := repo.GetByID(ctx, "guest:1", "a1")
	if got.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", got.Status)
	}

	missing := seedAudit("nope", "guest:1", time.Now().UTC())
	if err := repo.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing audit, got %v", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		audit := seedAudit(string(rune('a'+i)), "guest:1", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(ctx, audit); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.ListByOwner(ctx, "guest:1", 3, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 audits, got %d", len(list))
	}
	if list[0].ID != "e" || list[2].ID != "c" {
		t.Fatalf("expected newest-first order, got %s..%s", list[0].ID, list[2].ID)
	}

	page, err := repo.ListByOwner(ctx, "guest:1", 3, 3)
	if err != nil {
		t.Fatalf("ListByOwner offset: %v", err)
	}
	if len(page) != 2 || page[0].ID != "b" {
		t.Fatalf("unexpected second page: %+v", page)
	}

	empty, err := repo.ListByOwner(ctx, "guest:1", 3, 10)
	if err != nil {
		t.Fatalf("ListByOwner past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page past end, got %d", len(empty))
	}
}

func TestMemoryRepoHonorsContextCancellation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, seedAudit("a1", "guest:1", time.Now().UTC())); err == nil {
		t.Fatalf("expected error from canceled context")
	}
}
