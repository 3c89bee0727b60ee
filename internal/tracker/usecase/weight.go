package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type WeightCreateInput struct {
	MeasuredOn time.Time `validate:"required"`
	Kilograms  float64   `validate:"required,gt=0,lt=700"`
	Note       string    `validate:"max=500"`
}

type WeightCreateOutput struct {
	Weight entity.Weight
}

func (s *Usecase) WeightCreate(ctx context.Context, in WeightCreateInput) (*WeightCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "WeightCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	w := entity.Weight{
		ID:         s.uid.Generate(),
		MeasuredOn: in.MeasuredOn,
		Kilograms:  in.Kilograms,
		Note:       in.Note,
	}

	if err := s.repoDB.CreateWeight(ctx, w); err != nil {
		slog.ErrorContext(ctx, "failed to create weight", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &WeightCreateOutput{Weight: w}, nil
}

type WeightListOutput struct {
	Weights []entity.Weight
}

func (s *Usecase) WeightList(ctx context.Context) (*WeightListOutput, error) {
	ctx, span := s.startSpan(ctx, "WeightList")
	defer span.End()

	weights, err := s.repoDB.ListWeights(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list weights", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &WeightListOutput{Weights: weights}, nil
}

type WeightDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) WeightDelete(ctx context.Context, in WeightDeleteInput) error {
	ctx, span := s.startSpan(ctx, "WeightDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteWeight(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("weight entry not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete weight", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
