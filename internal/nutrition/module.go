package nutrition

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhdemir/lifehub/internal/nutrition/inbound"
	"github.com/muhdemir/lifehub/internal/nutrition/outbound/db"
	"github.com/muhdemir/lifehub/internal/nutrition/outbound/off"
	"github.com/muhdemir/lifehub/internal/nutrition/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repo,
		FoodAPI:    off.NewClient(dep.Config, dep.Instrument),
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
