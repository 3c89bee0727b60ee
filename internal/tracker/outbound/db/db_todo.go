package db

import (
	"context"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

func (s *DB) CreateTodo(ctx context.Context, t entity.Todo) (err error) {
	ctx, span := s.startSpan(ctx, "CreateTodo")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO todos (id, title, done, created_at)
		VALUES ($1, $2, $3, $4)
	`, t.ID, t.Title, t.Done, t.CreatedAt)

	err = s.mapError(err)
	return err
}

func (s *DB) ListTodos(ctx context.Context) (_ []entity.Todo, err error) {
	ctx, span := s.startSpan(ctx, "ListTodos")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, title, done, created_at
		FROM todos
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Todo
	for rows.Next() {
		var t entity.Todo
		if err = rows.Scan(&t.ID, &t.Title, &t.Done, &t.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, t)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

// ToggleTodo flips the done flag and returns the new value.
func (s *DB) ToggleTodo(ctx context.Context, id int64) (_ *entity.Todo, err error) {
	ctx, span := s.startSpan(ctx, "ToggleTodo")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		UPDATE todos SET done = NOT done
		WHERE id = $1
		RETURNING id, title, done, created_at
	`, id)

	var t entity.Todo
	if err = row.Scan(&t.ID, &t.Title, &t.Done, &t.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return &t, nil
}

func (s *DB) DeleteTodo(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteTodo")
	defer func() { s.endSpan(span, err) }()

	err = s.deleteRow(ctx, `DELETE FROM todos WHERE id = $1`, id)
	return err
}
