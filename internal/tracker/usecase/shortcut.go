package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type ShortcutCreateInput struct {
	Title    string `validate:"required,max=100"`
	URL      string `validate:"required,url"`
	Position int    `validate:"min=0"`
}

type ShortcutCreateOutput struct {
	Shortcut entity.Shortcut
}

func (s *Usecase) ShortcutCreate(ctx context.Context, in ShortcutCreateInput) (*ShortcutCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ShortcutCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	sc := entity.Shortcut{
		ID:       s.uid.Generate(),
		Title:    in.Title,
		URL:      in.URL,
		Position: in.Position,
	}

	if err := s.repoDB.CreateShortcut(ctx, sc); err != nil {
		slog.ErrorContext(ctx, "failed to create shortcut", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &ShortcutCreateOutput{Shortcut: sc}, nil
}

type ShortcutListOutput struct {
	Shortcuts []entity.Shortcut
}

func (s *Usecase) ShortcutList(ctx context.Context) (*ShortcutListOutput, error) {
	ctx, span := s.startSpan(ctx, "ShortcutList")
	defer span.End()

	shortcuts, err := s.repoDB.ListShortcuts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list shortcuts", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &ShortcutListOutput{Shortcuts: shortcuts}, nil
}

type ShortcutDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ShortcutDelete(ctx context.Context, in ShortcutDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ShortcutDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteShortcut(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("shortcut not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete shortcut", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
