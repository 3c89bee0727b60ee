package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/mail"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

type repoDB interface {
	CreateReminder(ctx context.Context, r entity.Reminder) error
	ListReminders(ctx context.Context) ([]entity.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
	ListDue(ctx context.Context, now time.Time, limit int32) ([]entity.Reminder, error)
	MarkDispatched(ctx context.Context, id int64) error
}

type repoMessaging interface {
	PublishReminderDue(ctx context.Context, r entity.Reminder) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	mailer        mail.Mail
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation

	running atomic.Bool

	mu          sync.Mutex
	subscribers map[int64]chan DueEvent
	nextSubID   int64
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Mailer        mail.Mail
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		mailer:        dep.Mailer,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		subscribers:   map[int64]chan DueEvent{},
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("reminder.usecase").Start(ctx, name)
}
