package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/mail"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
)

var errBoom = errors.New("boom")

type fakeRepo struct {
	mu        sync.Mutex
	reminders map[int64]entity.Reminder
	markErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reminders: map[int64]entity.Reminder{}}
}

func (f *fakeRepo) CreateReminder(_ context.Context, r entity.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminders[r.ID] = r
	return nil
}

func (f *fakeRepo) ListReminders(_ context.Context) ([]entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Reminder, 0, len(f.reminders))
	for _, r := range f.reminders {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindAt.Before(out[j].RemindAt) })
	return out, nil
}

func (f *fakeRepo) DeleteReminder(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reminders[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.reminders, id)
	return nil
}

func (f *fakeRepo) ListDue(_ context.Context, now time.Time, limit int32) ([]entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Reminder, 0)
	for _, r := range f.reminders {
		if !r.Dispatched && !r.RemindAt.After(now) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) MarkDispatched(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	r, ok := f.reminders[id]
	if !ok {
		return goerror.ErrNotFound
	}
	r.Dispatched = true
	f.reminders[id] = r
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []entity.Reminder
	failIDs   map[int64]bool
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{failIDs: map[int64]bool{}}
}

func (f *fakePublisher) PublishReminderDue(_ context.Context, r entity.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[r.ID] {
		return errBoom
	}
	f.published = append(f.published, r)
	return nil
}

type fakeMailer struct {
	mu       sync.Mutex
	sent     []mail.Message
	failNext bool
}

func (f *fakeMailer) Close() error { return nil }

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return errBoom
	}
	f.sent = append(f.sent, msg)
	return nil
}

type seqID struct {
	mu sync.Mutex
	n  int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

type staticConfig struct {
	recipient string
}

func (c *staticConfig) Close() error              { return nil }
func (c *staticConfig) GetInt(string) int         { return 0 }
func (c *staticConfig) GetInt32(string) int32     { return 0 }
func (c *staticConfig) GetInt64(string) int64     { return 0 }
func (c *staticConfig) GetUint(string) uint       { return 0 }
func (c *staticConfig) GetBool(string) bool       { return false }
func (c *staticConfig) GetFloat64(string) float64 { return 0 }
func (c *staticConfig) GetString(key string) string {
	switch key {
	case "modules.reminder.mail.recipient":
		return c.recipient
	case "modules.reminder.mail.sender":
		return "lifehub@example.com"
	}
	return ""
}
func (c *staticConfig) GetSecond(string) time.Duration { return 0 }
func (c *staticConfig) GetMinute(string) time.Duration { return 0 }
func (c *staticConfig) GetHour(string) time.Duration   { return 0 }
func (c *staticConfig) GetDay(string) time.Duration    { return 0 }
func (c *staticConfig) GetBinary(string) []byte        { return nil }
func (c *staticConfig) GetArray(string) []string       { return nil }

var testNow = time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	repo      *fakeRepo
	publisher *fakePublisher
	mailer    *fakeMailer
}

func newTestUsecase(recipient string) (*Usecase, *testDeps) {
	v10, err := validator.NewV10Validator()
	if err != nil {
		panic(err)
	}

	deps := &testDeps{
		repo:      newFakeRepo(),
		publisher: newFakePublisher(),
		mailer:    &fakeMailer{},
	}

	uc := New(Dependency{
		RepoDB:        deps.repo,
		RepoMessaging: deps.publisher,
		Mailer:        deps.mailer,
		Validator:     v10,
		Config:        &staticConfig{recipient: recipient},
		UID:           &seqID{},
		Clock:         clock.Fixed{At: testNow},
		Instrument:    instrument.NewNoop(),
	})

	return uc, deps
}
