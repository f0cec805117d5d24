package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teakeeper/internal/dbx"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/teas"
)

// InMemoryRepositoryManager vends process-memory repositories. Used by tests
// and store-less runs; the DBTX argument is ignored and there is no schema
// to migrate.
type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
	teas     *teas.InMemoryRepository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewInMemoryRepository(),
		teas:     teas.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Teas(db dbx.DBTX) teas.Repository {
	return m.teas
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
