package usecase

import (
	"context"
	"time"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	SearchProductsByName(ctx context.Context, query string, limit int32) ([]entity.Product, error)
	CreateProduct(ctx context.Context, p entity.Product) error

	CreateMeal(ctx context.Context, m entity.Meal) error
	ListMealsByDate(ctx context.Context, date time.Time) ([]entity.Meal, error)
	DeleteMeal(ctx context.Context, id int64) error
	SumMealsByDate(ctx context.Context, date time.Time) (*entity.DailySummary, error)
}

type foodAPI interface {
	GetProduct(ctx context.Context, barcode string) (*entity.LookupResult, error)
	Search(ctx context.Context, query string) ([]entity.LookupResult, error)
}

type Usecase struct {
	repoDB    repoDB
	foodAPI   foodAPI
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	FoodAPI    foodAPI
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		foodAPI:   dep.FoodAPI,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("nutrition.usecase").Start(ctx, name)
}
