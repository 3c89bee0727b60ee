package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("lifehub"),
		tcpostgres.WithUsername("lifehub"),
		tcpostgres.WithPassword("lifehub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(nat.Port("5432/tcp")),
		),
	)
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	repo := NewDB(pool, instrument.NewNoop())
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	return repo
}

func TestReminderLifecycle(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	past := entity.Reminder{ID: 1, Message: "overdue", RemindAt: now.Add(-time.Hour), CreatedAt: now}
	future := entity.Reminder{ID: 2, Message: "later", RemindAt: now.Add(time.Hour), CreatedAt: now}

	for _, r := range []entity.Reminder{past, future} {
		if err := repo.CreateReminder(ctx, r); err != nil {
			t.Fatalf("CreateReminder(%d) error = %v", r.ID, err)
		}
	}

	all, err := repo.ListReminders(ctx)
	if err != nil {
		t.Fatalf("ListReminders() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != past.ID {
		t.Fatalf("ListReminders() = %+v, want ordered by remind_at", all)
	}

	due, err := repo.ListDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("ListDue() error = %v", err)
	}
	if len(due) != 1 || due[0].ID != past.ID {
		t.Fatalf("ListDue() = %+v, want only the overdue reminder", due)
	}

	if err := repo.MarkDispatched(ctx, past.ID); err != nil {
		t.Fatalf("MarkDispatched() error = %v", err)
	}

	due, err = repo.ListDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("ListDue() error = %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("ListDue() after dispatch = %+v, want empty", due)
	}

	if err := repo.DeleteReminder(ctx, future.ID); err != nil {
		t.Fatalf("DeleteReminder() error = %v", err)
	}
	if err := repo.DeleteReminder(ctx, future.ID); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("DeleteReminder() repeated = %v, want ErrNotFound", err)
	}
}

func TestListDueBatchLimit(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := int64(1); i <= 5; i++ {
		r := entity.Reminder{ID: i, Message: "due", RemindAt: now.Add(-time.Minute), CreatedAt: now}
		if err := repo.CreateReminder(ctx, r); err != nil {
			t.Fatalf("CreateReminder(%d) error = %v", i, err)
		}
	}

	due, err := repo.ListDue(ctx, now, 3)
	if err != nil {
		t.Fatalf("ListDue() error = %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("ListDue() returned %d reminders, want 3", len(due))
	}
}
