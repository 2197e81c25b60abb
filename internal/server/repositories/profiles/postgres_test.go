package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("u-1", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p-1", time.Now()))

	profile, err := repo.Create(context.Background(), &models.Profile{UserID: "u-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if profile.ID != "p-1" {
		t.Fatalf("expected generated id, got %q", profile.ID)
	}
}

func TestGetByUserID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, bio, avatar_key, created_at FROM profiles")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestUpdateAvatarKey_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET avatar_key")).
		WithArgs("u-1", "avatars/u-1/key").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateAvatarKey(context.Background(), "u-1", "avatars/u-1/key"); err != nil {
		t.Fatalf("UpdateAvatarKey error: %v", err)
	}
}

func TestUpdateAvatarKey_NoProfile(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET avatar_key")).
		WithArgs("ghost", "k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAvatarKey(context.Background(), "ghost", "k")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}
