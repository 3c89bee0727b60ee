package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type TodoCreateInput struct {
	Title string `validate:"required,max=300"`
}

type TodoCreateOutput struct {
	Todo entity.Todo
}

func (s *Usecase) TodoCreate(ctx context.Context, in TodoCreateInput) (*TodoCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	t := entity.Todo{
		ID:        s.uid.Generate(),
		Title:     in.Title,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateTodo(ctx, t); err != nil {
		slog.ErrorContext(ctx, "failed to create todo", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &TodoCreateOutput{Todo: t}, nil
}

type TodoListOutput struct {
	Todos []entity.Todo
}

func (s *Usecase) TodoList(ctx context.Context) (*TodoListOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoList")
	defer span.End()

	todos, err := s.repoDB.ListTodos(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list todos", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &TodoListOutput{Todos: todos}, nil
}

type TodoToggleInput struct {
	ID int64 `validate:"required,gt=0"`
}

type TodoToggleOutput struct {
	Todo entity.Todo
}

func (s *Usecase) TodoToggle(ctx context.Context, in TodoToggleInput) (*TodoToggleOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoToggle")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	t, err := s.repoDB.ToggleTodo(ctx, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("todo not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to toggle todo", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &TodoToggleOutput{Todo: *t}, nil
}

type TodoDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) TodoDelete(ctx context.Context, in TodoDeleteInput) error {
	ctx, span := s.startSpan(ctx, "TodoDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if err := s.repoDB.DeleteTodo(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("todo not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to delete todo", "error", err)

		return goerror.NewServer(err)
	}

	return nil
}
