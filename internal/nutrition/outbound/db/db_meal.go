package db

import (
	"context"
	"time"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

func (s *DB) CreateMeal(ctx context.Context, m entity.Meal) (err error) {
	ctx, span := s.startSpan(ctx, "CreateMeal")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO meals (id, name, eaten_on, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, m.ID, m.Name, m.EatenOn, m.Calories, m.Protein, m.Carbs, m.Fat)

	err = s.mapError(err)
	return err
}

func (s *DB) ListMealsByDate(ctx context.Context, date time.Time) (_ []entity.Meal, err error) {
	ctx, span := s.startSpan(ctx, "ListMealsByDate")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, name, eaten_on, calories, protein, carbs, fat
		FROM meals
		WHERE eaten_on = $1
		ORDER BY id
	`, date)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Meal
	for rows.Next() {
		var m entity.Meal
		if err = rows.Scan(&m.ID, &m.Name, &m.EatenOn, &m.Calories, &m.Protein, &m.Carbs, &m.Fat); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, m)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) DeleteMeal(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteMeal")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
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

func (s *DB) SumMealsByDate(ctx context.Context, date time.Time) (_ *entity.DailySummary, err error) {
	ctx, span := s.startSpan(ctx, "SumMealsByDate")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(calories), 0),
			COALESCE(SUM(protein), 0),
			COALESCE(SUM(carbs), 0),
			COALESCE(SUM(fat), 0)
		FROM meals
		WHERE eaten_on = $1
	`, date)

	sum := entity.DailySummary{Date: date}
	if err = row.Scan(&sum.Meals, &sum.Calories, &sum.Protein, &sum.Carbs, &sum.Fat); err != nil {
		return nil, s.mapError(err)
	}

	return &sum, nil
}
