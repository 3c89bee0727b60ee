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

// EnsureSchema creates the tracker tables when they do not exist yet.
func (s *DB) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS weights (
			id          BIGINT PRIMARY KEY,
			measured_on DATE NOT NULL,
			kilograms   DOUBLE PRECISION NOT NULL,
			note        TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS todos (
			id         BIGINT PRIMARY KEY,
			title      TEXT NOT NULL,
			done       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS workouts (
			id           BIGINT PRIMARY KEY,
			performed_on DATE NOT NULL,
			activity     TEXT NOT NULL,
			duration_min INT NOT NULL,
			note         TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS goals (
			id          BIGINT PRIMARY KEY,
			title       TEXT NOT NULL,
			achieved    BOOLEAN NOT NULL DEFAULT FALSE,
			achieved_at TIMESTAMPTZ,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS shortcuts (
			id       BIGINT PRIMARY KEY,
			title    TEXT NOT NULL,
			url      TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
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
	return s.ins.Tracer("tracker.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// deleteRow is the shared shape of every tracker delete.
func (s *DB) deleteRow(ctx context.Context, query string, id int64) error {
	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
