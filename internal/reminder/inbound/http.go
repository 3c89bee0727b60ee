package inbound

import (
	"context"

	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/reminder/usecase"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	List(ctx context.Context) (*usecase.ListOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error

	ConsumeReminderDue(ctx context.Context, in usecase.ConsumeReminderDueInput) error
	Subscribe(ctx context.Context) <-chan usecase.DueEvent
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/reminders", end.Create)
	r.GET("/api/v1/reminders", end.List)
	r.DELETE("/api/v1/reminders/:id", end.Delete)

	r.GETRaw("/api/v1/reminders/stream", end.StreamHandler())
}
