package profiles

import (
	"context"

	"github.com/connectly/authsvc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateAvatarKey(ctx context.Context, userID string, key string) error
}
