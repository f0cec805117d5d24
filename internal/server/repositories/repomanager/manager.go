// Package repomanager wires repository implementations together behind a
// single injection point, so services do not care whether they run against
// PostgreSQL or the in-memory stores.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teakeeper/internal/dbx"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/teas"
)

// RepositoryManager vends repositories bound to the given database handle
// and exposes a schema migration hook.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Teas(db dbx.DBTX) teas.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
