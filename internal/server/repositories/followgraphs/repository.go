package followgraphs

import (
	"context"

	"github.com/connectly/authsvc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, graph *models.FollowGraph) (*models.FollowGraph, error)
	GetByUserID(ctx context.Context, userID string) (*models.FollowGraph, error)
}
