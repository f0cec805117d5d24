package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/repomanager"
)

func newTeaService(t *testing.T) *TeaService {
	t.Helper()
	return NewTeaService(nil, repomanager.NewInMemoryRepositoryManager())
}

func TestTeaService_CreateAndList(t *testing.T) {
	s := newTeaService(t)
	ctx := context.Background()

	created, err := s.CreateTea(ctx, "owner-a", "Oolong", 12.5)
	if err != nil {
		t.Fatalf("CreateTea error: %v", err)
	}
	if created.ID == "" || created.OwnerID != "owner-a" {
		t.Fatalf("unexpected tea: %+v", created)
	}

	list, err := s.ListTeas(ctx, "owner-a")
	if err != nil {
		t.Fatalf("ListTeas error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Oolong" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestTeaService_ListEmptyForFreshOwner(t *testing.T) {
	s := newTeaService(t)

	list, err := s.ListTeas(context.Background(), "owner-fresh")
	if err != nil {
		t.Fatalf("ListTeas error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestTeaService_OwnerScoping(t *testing.T) {
	s := newTeaService(t)
	ctx := context.Background()

	tea, err := s.CreateTea(ctx, "owner-a", "Sencha", 8)
	if err != nil {
		t.Fatalf("CreateTea error: %v", err)
	}

	if _, err := s.GetTea(ctx, tea.ID, "owner-b"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("get by non-owner: expected common.ErrorNotFound, got %v", err)
	}
	if _, err := s.UpdateTea(ctx, tea.ID, "owner-b", "x", 1); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("update by non-owner: expected common.ErrorNotFound, got %v", err)
	}
	if _, err := s.DeleteTea(ctx, tea.ID, "owner-b"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("delete by non-owner: expected common.ErrorNotFound, got %v", err)
	}
}

func TestTeaService_UpdateAndDelete(t *testing.T) {
	s := newTeaService(t)
	ctx := context.Background()

	tea, err := s.CreateTea(ctx, "owner-a", "Oolong", 12.5)
	if err != nil {
		t.Fatalf("CreateTea error: %v", err)
	}

	updated, err := s.UpdateTea(ctx, tea.ID, "owner-a", "Aged Oolong", 15)
	if err != nil {
		t.Fatalf("UpdateTea error: %v", err)
	}
	if updated.Name != "Aged Oolong" || updated.Price != 15 {
		t.Fatalf("unexpected updated tea: %+v", updated)
	}

	deleted, err := s.DeleteTea(ctx, tea.ID, "owner-a")
	if err != nil {
		t.Fatalf("DeleteTea error: %v", err)
	}
	if deleted.ID != tea.ID {
		t.Fatalf("unexpected deleted tea: %+v", deleted)
	}

	if _, err := s.GetTea(ctx, tea.ID, "owner-a"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound after delete, got %v", err)
	}
}

func TestTeaService_DeleteMissing(t *testing.T) {
	s := newTeaService(t)

	_, err := s.DeleteTea(context.Background(), "no-such-id", "owner-a")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
