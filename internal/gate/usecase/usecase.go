package usecase

import (
	"context"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/hash"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/otp"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type sessionStore interface {
	Create(ctx context.Context, tokenHash string, sess entity.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (*entity.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

type Usecase struct {
	store     sessionStore
	validator validator.Validator
	cfg       config.Config
	hmac      hash.Hash
	totp      otp.OTP
	clock     clock.Clocker
	jwt       jwt.JWT
	uuid      uid.StringID
	ins       instrument.Instrumentation
}

type Dependency struct {
	Store      sessionStore
	Validator  validator.Validator
	Config     config.Config
	HMAC       hash.Hash
	Totp       otp.OTP
	Clock      clock.Clocker
	JWT        jwt.JWT
	UUID       uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store:     dep.Store,
		validator: dep.Validator,
		cfg:       dep.Config,
		hmac:      dep.HMAC,
		totp:      dep.Totp,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		uuid:      dep.UUID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("gate.usecase").Start(ctx, name)
}
