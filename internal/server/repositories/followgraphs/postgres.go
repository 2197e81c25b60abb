// Package followgraphs provides a PostgreSQL-backed repository for the
// per-user follower/following records provisioned at registration. The two
// lists are stored as jsonb columns.
package followgraphs

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Create inserts the follow-graph row for a user and returns it with the
// generated id and creation time. Nil lists are stored as empty lists.
func (r *PostgresRepository) Create(ctx context.Context, graph *models.FollowGraph) (*models.FollowGraph, error) {

	if graph.Followers == nil {
		graph.Followers = []string{}
	}
	if graph.Following == nil {
		graph.Following = []string{}
	}

	followers, err := json.Marshal(graph.Followers)
	if err != nil {
		return nil, fmt.Errorf("marshal followers: %w", err)
	}
	following, err := json.Marshal(graph.Following)
	if err != nil {
		return nil, fmt.Errorf("marshal following: %w", err)
	}

	query :=
		`INSERT INTO follow_graphs (user_id, followers, following)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query, graph.UserID, followers, following).
		Scan(&graph.ID, &graph.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return graph, nil
}

// GetByUserID returns the follow graph owned by userID, or common.ErrNotFound.
func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.FollowGraph, error) {
	query :=
		`SELECT id, user_id, followers, following, created_at FROM follow_graphs
		 WHERE user_id = $1
		 `

	graph := &models.FollowGraph{}
	var followers, following []byte
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&graph.ID, &graph.UserID, &followers, &following, &graph.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(followers, &graph.Followers); err != nil {
		return nil, fmt.Errorf("unmarshal followers: %w", err)
	}
	if err := json.Unmarshal(following, &graph.Following); err != nil {
		return nil, fmt.Errorf("unmarshal following: %w", err)
	}

	return graph, nil
}
