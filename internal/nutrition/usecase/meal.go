package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

type MealCreateInput struct {
	Name     string    `validate:"required,max=200"`
	EatenOn  time.Time `validate:"required"`
	Calories int       `validate:"min=0"`
	Protein  int       `validate:"min=0"`
	Carbs    int       `validate:"min=0"`
	Fat      int       `validate:"min=0"`
}

type MealCreateOutput struct {
	Meal entity.Meal
}

func (s *Usecase) MealCreate(ctx context.Context, in MealCreateInput) (*MealCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "MealCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	meal := entity.Meal{
		ID:       s.uid.Generate(),
		Name:     in.Name,
		EatenOn:  in.EatenOn,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}

	if err := s.repoDB.CreateMeal(ctx, meal); err != nil {
		slog.ErrorContext(ctx, "failed to create meal", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &MealCreateOutput{Meal: meal}, nil
}

type MealListInput struct {
	Date time.Time `validate:"required"`
}

type MealListOutput struct {
	Meals []entity.Meal
}

func (s *Usecase) MealList(ctx context.Context, in MealListInput) (*MealListOutput, error) {
	ctx, span := s.startSpan(ctx, "MealList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	meals, err := s.repoDB.ListMealsByDate(ctx, in.Date)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list meals", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &MealListOutput{Meals: meals}, nil
}

type MealDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) MealDelete(ctx context.Context, in MealDeleteInput) error {
	ctx, span := s.startSpan(ctx, "MealDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteMeal(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("meal not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete meal", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}

type SummaryInput struct {
	Date time.Time `validate:"required"`
}

type SummaryOutput struct {
	Summary entity.DailySummary
}

func (s *Usecase) Summary(ctx context.Context, in SummaryInput) (*SummaryOutput, error) {
	ctx, span := s.startSpan(ctx, "Summary")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	sum, err := s.repoDB.SumMealsByDate(ctx, in.Date)
	if err != nil {
		slog.ErrorContext(ctx, "failed to summarize meals", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &SummaryOutput{Summary: *sum}, nil
}
