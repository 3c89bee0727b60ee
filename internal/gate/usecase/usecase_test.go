package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/hash"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/otp"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	libotp "github.com/pquerna/otp"
)

type fakeConfig struct {
	values map[string]any
}

func (f *fakeConfig) Close() error { return nil }

func (f *fakeConfig) GetInt(key string) int {
	if v, ok := f.values[key].(int); ok {
		return v
	}
	return 0
}

func (f *fakeConfig) GetInt32(key string) int32   { return int32(f.GetInt(key)) }
func (f *fakeConfig) GetInt64(key string) int64   { return int64(f.GetInt(key)) }
func (f *fakeConfig) GetUint(key string) uint     { return uint(f.GetInt(key)) }
func (f *fakeConfig) GetFloat64(key string) float64 { return float64(f.GetInt(key)) }

func (f *fakeConfig) GetBool(key string) bool {
	v, _ := f.values[key].(bool)
	return v
}

func (f *fakeConfig) GetString(key string) string {
	v, _ := f.values[key].(string)
	return v
}

func (f *fakeConfig) GetSecond(key string) time.Duration {
	return time.Duration(f.GetInt(key)) * time.Second
}

func (f *fakeConfig) GetMinute(key string) time.Duration {
	return time.Duration(f.GetInt(key)) * time.Minute
}

func (f *fakeConfig) GetHour(key string) time.Duration {
	return time.Duration(f.GetInt(key)) * time.Hour
}

func (f *fakeConfig) GetDay(key string) time.Duration {
	return time.Duration(f.GetInt(key)) * 24 * time.Hour
}

func (f *fakeConfig) GetBinary(key string) []byte {
	v, _ := f.values[key].([]byte)
	return v
}

func (f *fakeConfig) GetArray(key string) []string {
	v, _ := f.values[key].([]string)
	return v
}

type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	failNext error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]entity.Session{}}
}

func (f *fakeStore) Create(_ context.Context, tokenHash string, sess entity.Session, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}

	f.sessions[tokenHash] = sess
	return nil
}

func (f *fakeStore) Get(_ context.Context, tokenHash string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess, ok := f.sessions[tokenHash]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &sess, nil
}

func (f *fakeStore) Delete(_ context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, tokenHash)
	return nil
}

type fakeUUID struct {
	next string
}

func (f *fakeUUID) Generate() string {
	if f.next == "" {
		return "token-1"
	}
	return f.next
}

const (
	testIdentity   = "Muhammed"
	testFallback   = "admin123"
	testTOTPSecret = "JBSWY3DPEHPK3PXP"
	testJWTSecret  = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

// testNow pins the usecase clock. It must stay near the real clock because
// JWT verification inside the library validates expiry against time.Now.
var testNow = time.Now().UTC().Truncate(time.Second)

type ucOption func(*fakeConfig)

func withTOTPSecret(secret string) ucOption {
	return func(cfg *fakeConfig) {
		cfg.values["modules.gate.totp_secret"] = secret
	}
}

func newTestUsecase(store *fakeStore, opts ...ucOption) *Usecase {
	cfg := &fakeConfig{values: map[string]any{
		"modules.gate.identity":          testIdentity,
		"modules.gate.fallback_password": testFallback,
		"modules.gate.session_ttl_days":  30,
	}}
	for _, opt := range opts {
		opt(cfg)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		panic(err)
	}

	fixed := clock.Fixed{At: testNow}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret: []byte(testJWTSecret),
		Issuer: "lifehub",
		TTL:    time.Hour,
		Clock:  fixed,
		UUID:   &fakeUUID{},
	})
	if err != nil {
		panic(err)
	}

	return New(Dependency{
		Store:      store,
		Validator:  v10,
		Config:     cfg,
		HMAC:       hash.NewHMACSHA256("test-hmac-secret"),
		Totp:       otp.NewTOTP(30, 0, libotp.DigitsSix),
		Clock:      fixed,
		JWT:        signer,
		UUID:       &fakeUUID{},
		Instrument: instrument.NewNoop(),
	})
}

func totpCodeAt(secret string, at time.Time) string {
	code, err := otp.NewTOTP(30, 0, libotp.DigitsSix).GenerateCode(secret, at)
	if err != nil {
		panic(err)
	}
	return code
}
