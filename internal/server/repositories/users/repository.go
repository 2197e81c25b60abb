package users

import (
	"context"

	"github.com/connectly/authsvc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
}
