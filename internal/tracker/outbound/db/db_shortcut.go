package db

import (
	"context"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

func (s *DB) CreateShortcut(ctx context.Context, sc entity.Shortcut) (err error) {
	ctx, span := s.startSpan(ctx, "CreateShortcut")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO shortcuts (id, title, url, position)
		VALUES ($1, $2, $3, $4)
	`, sc.ID, sc.Title, sc.URL, sc.Position)

	err = s.mapError(err)
	return err
}

func (s *DB) ListShortcuts(ctx context.Context) (_ []entity.Shortcut, err error) {
	ctx, span := s.startSpan(ctx, "ListShortcuts")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, title, url, position
		FROM shortcuts
		ORDER BY position, id
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Shortcut
	for rows.Next() {
		var sc entity.Shortcut
		if err = rows.Scan(&sc.ID, &sc.Title, &sc.URL, &sc.Position); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, sc)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) DeleteShortcut(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteShortcut")
	defer func() { s.endSpan(span, err) }()

	err = s.deleteRow(ctx, `DELETE FROM shortcuts WHERE id = $1`, id)
	return err
}
