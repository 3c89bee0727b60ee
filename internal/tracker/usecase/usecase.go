package usecase

import (
	"context"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/idempotency"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/storage"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateWeight(ctx context.Context, w entity.Weight) error
	ListWeights(ctx context.Context) ([]entity.Weight, error)
	DeleteWeight(ctx context.Context, id int64) error

	CreateTodo(ctx context.Context, t entity.Todo) error
	ListTodos(ctx context.Context) ([]entity.Todo, error)
	ToggleTodo(ctx context.Context, id int64) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error

	CreateWorkout(ctx context.Context, w entity.Workout) error
	ListWorkouts(ctx context.Context) ([]entity.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error

	CreateGoal(ctx context.Context, g entity.Goal) error
	ListGoals(ctx context.Context) ([]entity.Goal, error)
	AchieveGoal(ctx context.Context, id int64, at time.Time) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error

	CreateShortcut(ctx context.Context, sc entity.Shortcut) error
	ListShortcuts(ctx context.Context) ([]entity.Shortcut, error)
	DeleteShortcut(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB      repoDB
	storage     storage.Storage
	idempotency idempotency.Idempotency
	validator   validator.Validator
	cfg         config.Config
	uid         uid.NumberID
	clock       clock.Clocker
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Storage     storage.Storage
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	UID         uid.NumberID
	Clock       clock.Clocker
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		storage:     dep.Storage,
		idempotency: dep.Idempotency,
		validator:   dep.Validator,
		cfg:         dep.Config,
		uid:         dep.UID,
		clock:       dep.Clock,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("tracker.usecase").Start(ctx, name)
}
