package db

import (
	"context"
	"time"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

func (s *DB) CreateGoal(ctx context.Context, g entity.Goal) (err error) {
	ctx, span := s.startSpan(ctx, "CreateGoal")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO goals (id, title, achieved, created_at)
		VALUES ($1, $2, $3, $4)
	`, g.ID, g.Title, g.Achieved, g.CreatedAt)

	err = s.mapError(err)
	return err
}

func (s *DB) ListGoals(ctx context.Context) (_ []entity.Goal, err error) {
	ctx, span := s.startSpan(ctx, "ListGoals")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, title, achieved, achieved_at, created_at
		FROM goals
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Goal
	for rows.Next() {
		var g entity.Goal
		if err = rows.Scan(&g.ID, &g.Title, &g.Achieved, &g.AchievedAt, &g.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, g)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

// AchieveGoal marks a goal achieved. Achieving an already achieved goal
// keeps the original achieved_at.
func (s *DB) AchieveGoal(ctx context.Context, id int64, at time.Time) (_ *entity.Goal, err error) {
	ctx, span := s.startSpan(ctx, "AchieveGoal")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		UPDATE goals
		SET achieved = TRUE, achieved_at = COALESCE(achieved_at, $2)
		WHERE id = $1
		RETURNING id, title, achieved, achieved_at, created_at
	`, id, at)

	var g entity.Goal
	if err = row.Scan(&g.ID, &g.Title, &g.Achieved, &g.AchievedAt, &g.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return &g, nil
}

func (s *DB) DeleteGoal(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteGoal")
	defer func() { s.endSpan(span, err) }()

	err = s.deleteRow(ctx, `DELETE FROM goals WHERE id = $1`, id)
	return err
}
