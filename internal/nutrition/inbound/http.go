package inbound

import (
	"context"

	"github.com/muhdemir/lifehub/internal/nutrition/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/router"
)

type uc interface {
	Lookup(ctx context.Context, in usecase.LookupInput) (*usecase.LookupOutput, error)

	MealCreate(ctx context.Context, in usecase.MealCreateInput) (*usecase.MealCreateOutput, error)
	MealList(ctx context.Context, in usecase.MealListInput) (*usecase.MealListOutput, error)
	MealDelete(ctx context.Context, in usecase.MealDeleteInput) error
	Summary(ctx context.Context, in usecase.SummaryInput) (*usecase.SummaryOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/nutrition/lookup", end.Lookup)

	r.POST("/api/v1/nutrition/meals", end.MealCreate)
	r.GET("/api/v1/nutrition/meals", end.MealList)
	r.DELETE("/api/v1/nutrition/meals/:id", end.MealDelete)
	r.GET("/api/v1/nutrition/summary", end.Summary)
}
