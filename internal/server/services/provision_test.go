package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/server/models"
)

func TestInitialize_CreatesBothRecordsInOneTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	p := NewProvisionService(db, rm)

	profile, graph, err := p.Initialize(context.Background(), &models.User{ID: "u-9"})
	if err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if profile.UserID != "u-9" || graph.UserID != "u-9" {
		t.Fatalf("records must belong to the user, got %+v %+v", profile, graph)
	}
	if len(graph.Followers) != 0 || len(graph.Following) != 0 {
		t.Fatalf("lists must start empty, got %+v", graph)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected a single committed transaction: %v", err)
	}
}

func TestInitialize_RollsBackWhenProfileFails(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.p.createErr = errors.New("insert failed")
	p := NewProvisionService(db, rm)

	_, _, err := p.Initialize(context.Background(), &models.User{ID: "u-9"})
	if !errors.Is(err, common.ErrProvisioning) {
		t.Fatalf("expected common.ErrProvisioning, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction must roll back: %v", err)
	}
}

func TestInitialize_RollsBackWhenFollowGraphFails(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.f.createErr = errors.New("insert failed")
	p := NewProvisionService(db, rm)

	_, _, err := p.Initialize(context.Background(), &models.User{ID: "u-9"})
	if !errors.Is(err, common.ErrProvisioning) {
		t.Fatalf("expected common.ErrProvisioning, got %v", err)
	}
	if !strings.Contains(err.Error(), "u-9") {
		t.Fatalf("error must reference the persisted user, got %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction must roll back: %v", err)
	}
}
