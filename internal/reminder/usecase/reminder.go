package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
)

type CreateInput struct {
	Message  string    `validate:"required,max=500"`
	RemindAt time.Time `validate:"required"`
}

type CreateOutput struct {
	Reminder entity.Reminder
}

func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	r := entity.Reminder{
		ID:        s.uid.Generate(),
		Message:   in.Message,
		RemindAt:  in.RemindAt,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateReminder(ctx, r); err != nil {
		slog.ErrorContext(ctx, "failed to create reminder", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &CreateOutput{Reminder: r}, nil
}

type ListOutput struct {
	Reminders []entity.Reminder
}

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	reminders, err := s.repoDB.ListReminders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Reminders: reminders}, nil
}

type DeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteReminder(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("reminder not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete reminder", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
