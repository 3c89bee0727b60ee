package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type GoalCreateInput struct {
	Title string `validate:"required,max=300"`
}

type GoalCreateOutput struct {
	Goal entity.Goal
}

func (s *Usecase) GoalCreate(ctx context.Context, in GoalCreateInput) (*GoalCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	g := entity.Goal{
		ID:        s.uid.Generate(),
		Title:     in.Title,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateGoal(ctx, g); err != nil {
		slog.ErrorContext(ctx, "failed to create goal", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &GoalCreateOutput{Goal: g}, nil
}

type GoalListOutput struct {
	Goals []entity.Goal
}

func (s *Usecase) GoalList(ctx context.Context) (*GoalListOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalList")
	defer span.End()

	goals, err := s.repoDB.ListGoals(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list goals", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &GoalListOutput{Goals: goals}, nil
}

type GoalAchieveInput struct {
	ID int64 `validate:"required,gt=0"`
}

type GoalAchieveOutput struct {
	Goal entity.Goal
}

// GoalAchieve marks a goal achieved. It is idempotent: achieving twice keeps
// the first achieved_at.
func (s *Usecase) GoalAchieve(ctx context.Context, in GoalAchieveInput) (*GoalAchieveOutput, error) {
	ctx, span := s.startSpan(ctx, "GoalAchieve")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	g, err := s.repoDB.AchieveGoal(ctx, in.ID, s.clock.Now())
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("goal not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to achieve goal", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &GoalAchieveOutput{Goal: *g}, nil
}

type GoalDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) GoalDelete(ctx context.Context, in GoalDeleteInput) error {
	ctx, span := s.startSpan(ctx, "GoalDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteGoal(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("goal not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete goal", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
