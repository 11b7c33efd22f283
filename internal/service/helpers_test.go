package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/repository"
	"github.com/alexanderramin/friendex/internal/testutil"
)

// testNow is 2021-03-15 12:00 UTC, a Monday.
var testNow = time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC)

func setupRepos(t *testing.T) (*sql.DB, repository.ContactRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteContactRepo(database), testutil.NewTestUoW(database)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}
