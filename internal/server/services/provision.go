package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/dbx"
	"github.com/connectly/authsvc/internal/server/models"
	"github.com/connectly/authsvc/internal/server/repositories/repomanager"
)

// ProvisionService creates the auxiliary records every account must have:
// one profile and one follow graph.
type ProvisionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewProvisionService constructs a ProvisionService.
func NewProvisionService(db *sql.DB, m repomanager.RepositoryManager) *ProvisionService {
	return &ProvisionService{db: db, repomanager: m}
}

// Initialize creates the profile and follow-graph rows for a freshly
// persisted user. It must run only after the identity row exists. Both rows
// are created inside one transaction, so they appear or vanish as a unit;
// no partial-success value is ever returned.
//
// On failure the returned error wraps common.ErrProvisioning and names the
// already-persisted user, leaving the rollback-or-repair decision to the
// caller.
func (s *ProvisionService) Initialize(ctx context.Context, user *models.User) (*models.Profile, *models.FollowGraph, error) {
	var (
		profile     *models.Profile
		followGraph *models.FollowGraph
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		profile, err = s.repomanager.Profiles(tx).Create(ctx, &models.Profile{UserID: user.ID})
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}

		followGraph, err = s.repomanager.FollowGraphs(tx).Create(ctx, &models.FollowGraph{
			UserID:    user.ID,
			Followers: []string{},
			Following: []string{},
		})
		if err != nil {
			return fmt.Errorf("error creating follow graph: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w for user %s: %v", common.ErrProvisioning, user.ID, err)
	}

	return profile, followGraph, nil
}
