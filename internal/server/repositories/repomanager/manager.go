package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/workfolio/internal/dbx"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/screenshots"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/workfolio/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Screenshots(db dbx.DBTX) screenshots.Repository
}
