package db

import (
	"context"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

func (s *DB) CreateWeight(ctx context.Context, w entity.Weight) (err error) {
	ctx, span := s.startSpan(ctx, "CreateWeight")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO weights (id, measured_on, kilograms, note)
		VALUES ($1, $2, $3, $4)
	`, w.ID, w.MeasuredOn, w.Kilograms, w.Note)

	err = s.mapError(err)
	return err
}

func (s *DB) ListWeights(ctx context.Context) (_ []entity.Weight, err error) {
	ctx, span := s.startSpan(ctx, "ListWeights")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, measured_on, kilograms, note
		FROM weights
		ORDER BY measured_on DESC, id DESC
	`)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Weight
	for rows.Next() {
		var w entity.Weight
		if err = rows.Scan(&w.ID, &w.MeasuredOn, &w.Kilograms, &w.Note); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, w)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) DeleteWeight(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteWeight")
	defer func() { s.endSpan(span, err) }()

	err = s.deleteRow(ctx, `DELETE FROM weights WHERE id = $1`, id)
	return err
}
