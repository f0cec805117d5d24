// Package accounts provides repositories for account (credential) storage.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/dbx"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

// uniqueViolation is the PostgreSQL error code for a unique-constraint hit.
const uniqueViolation = "23505"

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. The unique index on phone resolves
// concurrent creates: the loser sees common.ErrorAlreadyExists rather than a
// duplicate row or a raw driver error.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (phone, password_hash, display_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Phone, account.PasswordHash, account.DisplayID).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// GetByPhone returns the account registered with the given phone number,
// or common.ErrorNotFound.
func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query :=
		`SELECT id, phone, password_hash, display_id, created_at FROM accounts
		 WHERE phone = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, phone).Scan(
		&account.ID, &account.Phone, &account.PasswordHash, &account.DisplayID, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// GetByID returns the account with the given durable identifier,
// or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, phone, password_hash, display_id, created_at FROM accounts
		 WHERE id = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Phone, &account.PasswordHash, &account.DisplayID, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
