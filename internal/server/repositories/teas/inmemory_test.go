package teas

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

func seedTea(t *testing.T, repo *InMemoryRepository, ownerID, name string, price float64) *models.Tea {
	t.Helper()
	tea, err := repo.Create(context.Background(), &models.Tea{OwnerID: ownerID, Name: name, Price: price})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return tea
}

func TestInMemory_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	tea := seedTea(t, repo, "owner-a", "Oolong", 12.5)

	got, err := repo.GetByIDForOwner(context.Background(), tea.ID, "owner-a")
	if err != nil {
		t.Fatalf("GetByIDForOwner error: %v", err)
	}
	if got.Name != "Oolong" || got.Price != 12.5 {
		t.Fatalf("unexpected tea: %+v", got)
	}
}

func TestInMemory_OwnerIsolation(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()
	tea := seedTea(t, repo, "owner-a", "Sencha", 8)

	// A different owner must not be able to see, change, or remove the item,
	// and must not learn that it exists.
	if _, err := repo.GetByIDForOwner(ctx, tea.ID, "owner-b"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("get by non-owner: expected common.ErrorNotFound, got %v", err)
	}
	if _, err := repo.UpdateByIDForOwner(ctx, tea.ID, "owner-b", "Stolen", 0); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("update by non-owner: expected common.ErrorNotFound, got %v", err)
	}
	if _, err := repo.DeleteByIDForOwner(ctx, tea.ID, "owner-b"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("delete by non-owner: expected common.ErrorNotFound, got %v", err)
	}

	// The record must be intact for its owner.
	got, err := repo.GetByIDForOwner(ctx, tea.ID, "owner-a")
	if err != nil {
		t.Fatalf("GetByIDForOwner error: %v", err)
	}
	if got.Name != "Sencha" || got.Price != 8 {
		t.Fatalf("record was modified by a non-owner: %+v", got)
	}
}

func TestInMemory_ListByOwner(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()
	seedTea(t, repo, "owner-a", "Oolong", 12.5)
	seedTea(t, repo, "owner-a", "Sencha", 8)
	seedTea(t, repo, "owner-b", "Matcha", 20)

	listA, err := repo.ListByOwner(ctx, "owner-a")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(listA) != 2 {
		t.Fatalf("expected 2 teas for owner-a, got %d", len(listA))
	}

	listC, err := repo.ListByOwner(ctx, "owner-c")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(listC) != 0 {
		t.Fatalf("expected empty list for unknown owner, got %d", len(listC))
	}
}

func TestInMemory_UpdateReplacesBothFields(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()
	tea := seedTea(t, repo, "owner-a", "Oolong", 12.5)

	updated, err := repo.UpdateByIDForOwner(ctx, tea.ID, "owner-a", "Aged Oolong", 15)
	if err != nil {
		t.Fatalf("UpdateByIDForOwner error: %v", err)
	}
	if updated.Name != "Aged Oolong" || updated.Price != 15 {
		t.Fatalf("unexpected updated tea: %+v", updated)
	}
}

func TestInMemory_DeleteReturnsRecord(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()
	tea := seedTea(t, repo, "owner-a", "Puerh", 30)

	deleted, err := repo.DeleteByIDForOwner(ctx, tea.ID, "owner-a")
	if err != nil {
		t.Fatalf("DeleteByIDForOwner error: %v", err)
	}
	if deleted.Name != "Puerh" {
		t.Fatalf("unexpected deleted tea: %+v", deleted)
	}

	if _, err := repo.GetByIDForOwner(ctx, tea.ID, "owner-a"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound after delete, got %v", err)
	}
}

func TestInMemory_DeleteMissing(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	if _, err := repo.DeleteByIDForOwner(context.Background(), "no-such-id", "owner-a"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
