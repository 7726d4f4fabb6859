package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/analyses"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/notes"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/settings"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can use
// the same code path inside and outside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Analyses(db dbx.DBTX) analyses.Repository
	Notes(db dbx.DBTX) notes.Repository
	Settings(db dbx.DBTX) settings.Repository
}
