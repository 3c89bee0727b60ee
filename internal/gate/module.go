package gate

import (
	"github.com/muhdemir/lifehub/internal/gate/inbound"
	"github.com/muhdemir/lifehub/internal/gate/outbound/sessionstore"
	"github.com/muhdemir/lifehub/internal/gate/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/hash"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/otp"
	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

// Module owns authentication. It is built before the router because the
// router needs the guard middleware at construction time.
type Module struct {
	uc *usecase.Usecase
}

func New(dep Dependency) (*Module, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	store := sessionstore.NewRedis(dep.CacheConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Store:      store,
		Validator:  dep.Validator,
		Config:     dep.Config,
		HMAC:       dep.HMAC,
		Totp:       dep.Totp,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		UUID:       dep.UUID,
		Instrument: dep.Instrument,
	})

	return &Module{uc: uc}, nil
}

// Guard returns the middleware that authenticates non-public requests.
func (m *Module) Guard() router.Middleware {
	return inbound.Guard(m.uc)
}

// RegisterRoutes mounts the session endpoints on the router.
func (m *Module) RegisterRoutes(r *router.Router) {
	inbound.RegisterHTTPEndpoint(r, m.uc)
}
