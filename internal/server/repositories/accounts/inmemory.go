package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// InMemoryRepository keeps accounts in process memory. Used by tests and by
// store-less deployments. The mutex makes create-or-fail atomic, mirroring
// the unique constraint of the Postgres implementation.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byPhone map[string]*models.Account
	byID    map[string]*models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byPhone: make(map[string]*models.Account),
		byID:    make(map[string]*models.Account),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPhone[account.Phone]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *account
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byPhone[stored.Phone] = &stored
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byPhone[phone]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *account
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *account
	return &result, nil
}
