package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/repomanager"
)

// TeaService implements the owner-scoped inventory operations. Every method
// takes the ownerID resolved from the authenticated principal; the caller
// never supplies it from request data.
type TeaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTeaService constructs a TeaService over the given repositories.
func NewTeaService(db *sql.DB, m repomanager.RepositoryManager) *TeaService {
	return &TeaService{db: db, repomanager: m}
}

// CreateTea stores a new tea owned by ownerID.
func (s *TeaService) CreateTea(ctx context.Context, ownerID string, name string, price float64) (*models.Tea, error) {
	repo := s.repomanager.Teas(s.db)

	tea, err := repo.Create(ctx, &models.Tea{OwnerID: ownerID, Name: name, Price: price})
	if err != nil {
		return nil, common.ErrorInternal
	}
	return tea, nil
}

// ListTeas returns every tea owned by ownerID. A fresh account gets an
// empty slice, not an error.
func (s *TeaService) ListTeas(ctx context.Context, ownerID string) ([]*models.Tea, error) {
	repo := s.repomanager.Teas(s.db)

	teas, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return teas, nil
}

// GetTea returns the tea with the given id if ownerID owns it.
func (s *TeaService) GetTea(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	repo := s.repomanager.Teas(s.db)

	tea, err := repo.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return tea, nil
}

// UpdateTea replaces name and price of the owner's tea.
func (s *TeaService) UpdateTea(ctx context.Context, id string, ownerID string, name string, price float64) (*models.Tea, error) {
	repo := s.repomanager.Teas(s.db)

	tea, err := repo.UpdateByIDForOwner(ctx, id, ownerID, name, price)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return tea, nil
}

// DeleteTea removes the owner's tea and returns the deleted record.
func (s *TeaService) DeleteTea(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	repo := s.repomanager.Teas(s.db)

	tea, err := repo.DeleteByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return tea, nil
}

// mapRepoError keeps not-found (which doubles as not-owned) intact and
// collapses everything else into the generic internal error.
func mapRepoError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return common.ErrorInternal
}
