package accounts

import (
	"context"

	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// Repository is the credential store: a durable mapping from the unique
// phone number to account records.
//
// Create must be atomic with respect to concurrent creates for the same
// phone: exactly one caller wins, every loser gets common.ErrorAlreadyExists.
// Uniqueness is the store's job, not the caller's.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}
