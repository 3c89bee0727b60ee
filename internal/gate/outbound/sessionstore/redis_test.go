package sessionstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) *Redis {
	t.Helper()

	ctx := context.Background()
	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	uri, err := ctr.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	opt, err := redis.ParseURL(uri)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}

	client := redis.NewClient(opt)
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, instrument.NewNoop())
}

func TestRedisSessionLifecycle(t *testing.T) {
	store := setupRedis(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := entity.Session{
		Username:  "Muhammed",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	if err := store.Create(ctx, "deadbeef", sess, time.Hour); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.Get(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Username != sess.Username || !got.ExpiresAt.Equal(sess.ExpiresAt) {
		t.Fatalf("Get() = %+v, want %+v", got, sess)
	}

	if err := store.Delete(ctx, "deadbeef"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.Get(ctx, "deadbeef"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after delete = %v, want ErrNotFound", err)
	}
}

func TestRedisSessionTTL(t *testing.T) {
	store := setupRedis(t)
	ctx := context.Background()

	now := time.Now().UTC()
	sess := entity.Session{Username: "Muhammed", CreatedAt: now, ExpiresAt: now.Add(time.Second)}

	if err := store.Create(ctx, "shortlived", sess, time.Second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	time.Sleep(1500 * time.Millisecond)

	if _, err := store.Get(ctx, "shortlived"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("Get() after ttl = %v, want ErrNotFound", err)
	}
}
