// Package users provides a PostgreSQL-backed repository for account
// credential records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/dbx"
	"github.com/connectly/authsvc/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user and returns it with the generated id and
// creation time. The unique index on user_name enforces handle uniqueness
// atomically; a violation maps to common.ErrDuplicateHandle so callers can
// distinguish it from other storage faults.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (full_name, user_name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FullName, user.UserName, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateHandle, pgErr.Message)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetUserByHandle returns the account stored under handle, including the
// password hash the caller needs for verification. Absence maps to
// common.ErrNotFound and is not a fault.
func (r *PostgresRepository) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	query :=
		`SELECT id, full_name, user_name, email, password_hash, created_at FROM users
		 WHERE user_name = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, handle).
		Scan(&user.ID, &user.FullName, &user.UserName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
