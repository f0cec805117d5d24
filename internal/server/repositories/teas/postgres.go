// Package teas provides repositories for owner-scoped tea inventory storage.
package teas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/dbx"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// PostgresRepository implements tea storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new tea for tea.OwnerID.
func (r *PostgresRepository) Create(ctx context.Context, tea *models.Tea) (*models.Tea, error) {

	query :=
		`INSERT INTO teas (owner_id, name, price)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tea.OwnerID, tea.Name, tea.Price).Scan(&tea.ID, &tea.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tea, nil
}

// ListByOwner returns all teas belonging to ownerID. Order is not part of
// the contract.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tea, error) {
	query :=
		`SELECT id, owner_id, name, price, created_at FROM teas
		 WHERE owner_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Tea
	for rows.Next() {
		var item models.Tea
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Price, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByIDForOwner returns the tea with the given id if it belongs to
// ownerID; common.ErrorNotFound otherwise, whether the row is absent or
// owned by someone else.
func (r *PostgresRepository) GetByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	query :=
		`SELECT id, owner_id, name, price, created_at FROM teas
		 WHERE id = $1 AND owner_id = $2
		 `

	tea := &models.Tea{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&tea.ID, &tea.OwnerID, &tea.Name, &tea.Price, &tea.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tea, nil
}

// UpdateByIDForOwner replaces name and price of the owner's tea in a single
// owner-filtered statement. No row updated means common.ErrorNotFound.
func (r *PostgresRepository) UpdateByIDForOwner(ctx context.Context, id string, ownerID string, name string, price float64) (*models.Tea, error) {
	query :=
		`UPDATE teas SET name = $3, price = $4
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, name, price, created_at
		 `

	tea := &models.Tea{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID, name, price).Scan(
		&tea.ID, &tea.OwnerID, &tea.Name, &tea.Price, &tea.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tea, nil
}

// DeleteByIDForOwner removes the owner's tea and returns the deleted row.
// No row deleted means common.ErrorNotFound.
func (r *PostgresRepository) DeleteByIDForOwner(ctx context.Context, id string, ownerID string) (*models.Tea, error) {
	query :=
		`DELETE FROM teas
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, name, price, created_at
		 `

	tea := &models.Tea{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&tea.ID, &tea.OwnerID, &tea.Name, &tea.Price, &tea.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tea, nil
}
