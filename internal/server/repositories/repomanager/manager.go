// Package repomanager wires entity repositories to a database handle and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/orgkeeper/internal/dbx"
	"github.com/dmitrijs2005/orgkeeper/internal/server/repositories/organisations"
	"github.com/dmitrijs2005/orgkeeper/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to db, which may be either
// a plain connection or an open transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Organisations(db dbx.DBTX) organisations.Repository
}
