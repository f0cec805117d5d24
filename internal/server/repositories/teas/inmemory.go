package teas

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// InMemoryRepository keeps teas in process memory, guarded by a mutex.
// The owner filter is applied on every per-id operation, exactly like the
// WHERE clause of the Postgres implementation.
type InMemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Tea
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*models.Tea)}
}

func (r *InMemoryRepository) Create(ctx context.Context, tea *models.Tea) (*models.Tea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tea
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Tea
	for _, tea := range r.byID {
		if tea.OwnerID == ownerID {
			item := *tea
			result = append(result, &item)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) GetByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tea, ok := r.byID[id]
	if !ok || tea.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	result := *tea
	return &result, nil
}

func (r *InMemoryRepository) UpdateByIDForOwner(ctx context.Context, id string, ownerID string, name string, price float64) (*models.Tea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tea, ok := r.byID[id]
	if !ok || tea.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	tea.Name = name
	tea.Price = price

	result := *tea
	return &result, nil
}

func (r *InMemoryRepository) DeleteByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tea, ok := r.byID[id]
	if !ok || tea.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	delete(r.byID, id)

	result := *tea
	return &result, nil
}
