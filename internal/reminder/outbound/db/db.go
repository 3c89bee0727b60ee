package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
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

// EnsureSchema creates the reminders table when it does not exist yet.
func (s *DB) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS reminders (
			id         BIGINT PRIMARY KEY,
			message    TEXT NOT NULL,
			remind_at  TIMESTAMPTZ NOT NULL,
			dispatched BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
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
	return s.ins.Tracer("reminder.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) CreateReminder(ctx context.Context, r entity.Reminder) (err error) {
	ctx, span := s.startSpan(ctx, "CreateReminder")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO reminders (id, message, remind_at, dispatched, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.ID, r.Message, r.RemindAt, r.Dispatched, r.CreatedAt)

	err = s.mapError(err)
	return err
}

func (s *DB) ListReminders(ctx context.Context) (_ []entity.Reminder, err error) {
	ctx, span := s.startSpan(ctx, "ListReminders")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, message, remind_at, dispatched, created_at
		FROM reminders
		ORDER BY remind_at, id
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Reminder
	for rows.Next() {
		var r entity.Reminder
		if err = rows.Scan(&r.ID, &r.Message, &r.RemindAt, &r.Dispatched, &r.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) DeleteReminder(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteReminder")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

// ListDue returns undispatched reminders whose remind_at has passed.
func (s *DB) ListDue(ctx context.Context, now time.Time, limit int32) (_ []entity.Reminder, err error) {
	ctx, span := s.startSpan(ctx, "ListDue")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, message, remind_at, dispatched, created_at
		FROM reminders
		WHERE dispatched = FALSE AND remind_at <= $1
		ORDER BY remind_at, id
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Reminder
	for rows.Next() {
		var r entity.Reminder
		if err = rows.Scan(&r.ID, &r.Message, &r.RemindAt, &r.Dispatched, &r.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) MarkDispatched(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkDispatched")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `UPDATE reminders SET dispatched = TRUE WHERE id = $1`, id)

	err = s.mapError(err)
	return err
}
