package teas

import (
	"context"

	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// Repository is the owner-scoped tea store. Every per-id operation filters
// by owner inside the store itself; an item that exists but belongs to
// someone else is indistinguishable from one that does not exist, both are
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, tea *models.Tea) (*models.Tea, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Tea, error)
	GetByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error)
	// UpdateByIDForOwner replaces name and price together; partial updates
	// are not supported.
	UpdateByIDForOwner(ctx context.Context, id string, ownerID string, name string, price float64) (*models.Tea, error)
	// DeleteByIDForOwner returns the deleted record for confirmation.
	DeleteByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error)
}
