package repomanager

import (
	"context"
	"database/sql"

	"github.com/connectly/authsvc/internal/dbx"
	"github.com/connectly/authsvc/internal/server/repositories/followgraphs"
	"github.com/connectly/authsvc/internal/server/repositories/profiles"
	"github.com/connectly/authsvc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	FollowGraphs(db dbx.DBTX) followgraphs.Repository
}
