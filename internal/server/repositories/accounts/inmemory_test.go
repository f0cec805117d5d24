package accounts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

func TestInMemory_CreateAndLookup(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Account{Phone: "5550100", PasswordHash: "digest", DisplayID: 12345})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	byPhone, err := repo.GetByPhone(ctx, "5550100")
	if err != nil {
		t.Fatalf("GetByPhone error: %v", err)
	}
	if byPhone.ID != created.ID {
		t.Fatalf("phone lookup returned wrong account: %+v", byPhone)
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if byID.Phone != "5550100" {
		t.Fatalf("id lookup returned wrong account: %+v", byID)
	}
}

func TestInMemory_DuplicatePhone(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.Account{Phone: "5550100"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	_, err := repo.Create(ctx, &models.Account{Phone: "5550100"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestInMemory_ConcurrentCreate_SingleWinner(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.Account{Phone: "5550100", PasswordHash: "digest"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, common.ErrorAlreadyExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Fatalf("expected exactly one successful create, got %d", successes)
	}
	if conflicts != workers-1 {
		t.Fatalf("expected %d conflicts, got %d", workers-1, conflicts)
	}
}

func TestInMemory_GetMissing(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.GetByPhone(ctx, "none"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "none"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
