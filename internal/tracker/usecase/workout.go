package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type WorkoutCreateInput struct {
	PerformedOn time.Time `validate:"required"`
	Activity    string    `validate:"required,max=200"`
	DurationMin int       `validate:"required,gt=0,lte=1440"`
	Note        string    `validate:"max=500"`
}

type WorkoutCreateOutput struct {
	Workout entity.Workout
}

func (s *Usecase) WorkoutCreate(ctx context.Context, in WorkoutCreateInput) (*WorkoutCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "WorkoutCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	w := entity.Workout{
		ID:          s.uid.Generate(),
		PerformedOn: in.PerformedOn,
		Activity:    in.Activity,
		DurationMin: in.DurationMin,
		Note:        in.Note,
	}

	if err := s.repoDB.CreateWorkout(ctx, w); err != nil {
		slog.ErrorContext(ctx, "failed to create workout", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &WorkoutCreateOutput{Workout: w}, nil
}

type WorkoutListOutput struct {
	Workouts []entity.Workout
}

func (s *Usecase) WorkoutList(ctx context.Context) (*WorkoutListOutput, error) {
	ctx, span := s.startSpan(ctx, "WorkoutList")
	defer span.End()

	workouts, err := s.repoDB.ListWorkouts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list workouts", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &WorkoutListOutput{Workouts: workouts}, nil
}

type WorkoutDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) WorkoutDelete(ctx context.Context, in WorkoutDeleteInput) error {
	ctx, span := s.startSpan(ctx, "WorkoutDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteWorkout(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("workout not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete workout", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
