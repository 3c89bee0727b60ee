package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

// EnsureSchema creates the nutrition tables when they do not exist yet.
func (s *DB) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id         BIGINT PRIMARY KEY,
			barcode    TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			brand      TEXT NOT NULL DEFAULT '',
			calories   INT NOT NULL DEFAULT 0,
			protein    INT NOT NULL DEFAULT 0,
			carbs      INT NOT NULL DEFAULT 0,
			fat        INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS meals (
			id       BIGINT PRIMARY KEY,
			name     TEXT NOT NULL,
			eaten_on DATE NOT NULL,
			calories INT NOT NULL DEFAULT 0,
			protein  INT NOT NULL DEFAULT 0,
			carbs    INT NOT NULL DEFAULT 0,
			fat      INT NOT NULL DEFAULT 0
		);
	`)

	return err
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("nutrition.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
