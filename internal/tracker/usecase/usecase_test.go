package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/idempotency"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/storage"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type fakeRepo struct {
	mu        sync.Mutex
	weights   map[int64]entity.Weight
	todos     map[int64]entity.Todo
	workouts  map[int64]entity.Workout
	goals     map[int64]entity.Goal
	shortcuts map[int64]entity.Shortcut
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		weights:   map[int64]entity.Weight{},
		todos:     map[int64]entity.Todo{},
		workouts:  map[int64]entity.Workout{},
		goals:     map[int64]entity.Goal{},
		shortcuts: map[int64]entity.Shortcut{},
	}
}

func (f *fakeRepo) CreateWeight(_ context.Context, w entity.Weight) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weights[w.ID] = w
	return nil
}

func (f *fakeRepo) ListWeights(_ context.Context) ([]entity.Weight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Weight, 0, len(f.weights))
	for _, w := range f.weights {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeRepo) DeleteWeight(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.weights[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.weights, id)
	return nil
}

func (f *fakeRepo) CreateTodo(_ context.Context, t entity.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todos[t.ID] = t
	return nil
}

func (f *fakeRepo) ListTodos(_ context.Context) ([]entity.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Todo, 0, len(f.todos))
	for _, t := range f.todos {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) ToggleTodo(_ context.Context, id int64) (*entity.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.todos[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	t.Done = !t.Done
	f.todos[id] = t
	return &t, nil
}

func (f *fakeRepo) DeleteTodo(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.todos[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

func (f *fakeRepo) CreateWorkout(_ context.Context, w entity.Workout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workouts[w.ID] = w
	return nil
}

func (f *fakeRepo) ListWorkouts(_ context.Context) ([]entity.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Workout, 0, len(f.workouts))
	for _, w := range f.workouts {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeRepo) DeleteWorkout(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.workouts[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.workouts, id)
	return nil
}

func (f *fakeRepo) CreateGoal(_ context.Context, g entity.Goal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.goals[g.ID] = g
	return nil
}

func (f *fakeRepo) ListGoals(_ context.Context) ([]entity.Goal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Goal, 0, len(f.goals))
	for _, g := range f.goals {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) AchieveGoal(_ context.Context, id int64, at time.Time) (*entity.Goal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.goals[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	g.Achieved = true
	if g.AchievedAt == nil {
		g.AchievedAt = &at
	}
	f.goals[id] = g
	return &g, nil
}

func (f *fakeRepo) DeleteGoal(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.goals[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.goals, id)
	return nil
}

func (f *fakeRepo) CreateShortcut(_ context.Context, sc entity.Shortcut) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shortcuts[sc.ID] = sc
	return nil
}

func (f *fakeRepo) ListShortcuts(_ context.Context) ([]entity.Shortcut, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Shortcut, 0, len(f.shortcuts))
	for _, sc := range f.shortcuts {
		out = append(out, sc)
	}
	return out, nil
}

func (f *fakeRepo) DeleteShortcut(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.shortcuts[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.shortcuts, id)
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = data

	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: int64(len(data)), ContentType: opts.ContentType}, nil
}

func (f *fakeStorage) GetObject(_ context.Context, bucket, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) StatObject(_ context.Context, bucket, key string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) DeleteObject(_ context.Context, bucket, key string) error { return nil }

func (f *fakeStorage) PresignGet(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + bucket + "/" + key + "?signed=1", nil
}

// fakeIdempotency runs the callback at most once per key.
type fakeIdempotency struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakeIdempotency() *fakeIdempotency {
	return &fakeIdempotency{seen: map[string]bool{}}
}

func (f *fakeIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }
func (f *fakeIdempotency) MarkFailed(context.Context, string, time.Duration) error    { return nil }

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.mu.Lock()
	if f.seen[key] {
		f.mu.Unlock()
		return idempotency.ErrAlreadyCompleted
	}
	f.seen[key] = true
	f.mu.Unlock()

	return fn(ctx)
}

var testNow = time.Date(2026, time.August, 30, 10, 30, 0, 0, time.UTC)

func newTestUsecase(repo *fakeRepo, store *fakeStorage) *Usecase {
	v10, err := validator.NewV10Validator()
	if err != nil {
		panic(err)
	}

	return New(Dependency{
		RepoDB:      repo,
		Storage:     store,
		Idempotency: newFakeIdempotency(),
		Validator:   v10,
		Config:      &staticConfig{},
		UID:         &seqID{},
		Clock:       clock.Fixed{At: testNow},
		Instrument:  instrument.NewNoop(),
	})
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

type staticConfig struct{}

func (c *staticConfig) Close() error                    { return nil }
func (c *staticConfig) GetInt(string) int               { return 0 }
func (c *staticConfig) GetInt32(string) int32           { return 0 }
func (c *staticConfig) GetInt64(string) int64           { return 0 }
func (c *staticConfig) GetUint(string) uint             { return 0 }
func (c *staticConfig) GetBool(string) bool             { return false }
func (c *staticConfig) GetFloat64(string) float64       { return 0 }
func (c *staticConfig) GetString(key string) string {
	if key == "modules.tracker.export.bucket" {
		return "lifehub-exports"
	}
	return ""
}
func (c *staticConfig) GetSecond(string) time.Duration { return 0 }
func (c *staticConfig) GetMinute(string) time.Duration { return 0 }
func (c *staticConfig) GetHour(string) time.Duration   { return 0 }
func (c *staticConfig) GetDay(string) time.Duration    { return 0 }
func (c *staticConfig) GetBinary(string) []byte        { return nil }
func (c *staticConfig) GetArray(string) []string       { return nil }
