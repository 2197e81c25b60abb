// Package profiles provides a PostgreSQL-backed repository for the per-user
// profile records provisioned at registration.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/dbx"
	"github.com/connectly/authsvc/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the profile row for a user and returns it with the
// generated id and creation time.
func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {

	query :=
		`INSERT INTO profiles (user_id, bio, avatar_key)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.Bio, profile.AvatarKey).
		Scan(&profile.ID, &profile.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

// GetByUserID returns the profile owned by userID, or common.ErrNotFound.
func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query :=
		`SELECT id, user_id, bio, avatar_key, created_at FROM profiles
		 WHERE user_id = $1
		 `

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&profile.ID, &profile.UserID, &profile.Bio, &profile.AvatarKey, &profile.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

// UpdateAvatarKey records the avatar object key on the user's profile.
// common.ErrNotFound when the user has no profile row.
func (r *PostgresRepository) UpdateAvatarKey(ctx context.Context, userID string, key string) error {
	query :=
		`UPDATE profiles SET avatar_key = $2
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
