package db

import (
	"context"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

func (s *DB) CreateWorkout(ctx context.Context, w entity.Workout) (err error) {
	ctx, span := s.startSpan(ctx, "CreateWorkout")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO workouts (id, performed_on, activity, duration_min, note)
		VALUES ($1, $2, $3, $4, $5)
	`, w.ID, w.PerformedOn, w.Activity, w.DurationMin, w.Note)

	err = s.mapError(err)
	return err
}

func (s *DB) ListWorkouts(ctx context.Context) (_ []entity.Workout, err error) {
	ctx, span := s.startSpan(ctx, "ListWorkouts")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, performed_on, activity, duration_min, note
		FROM workouts
		ORDER BY performed_on DESC, id DESC
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Workout
	for rows.Next() {
		var w entity.Workout
		if err = rows.Scan(&w.ID, &w.PerformedOn, &w.Activity, &w.DurationMin, &w.Note); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, w)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) DeleteWorkout(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteWorkout")
	defer func() { s.endSpan(span, err) }()

	err = s.deleteRow(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	return err
}
