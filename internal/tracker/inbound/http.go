package inbound

import (
	"context"

	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/tracker/usecase"
)

type uc interface {
	WeightCreate(ctx context.Context, in usecase.WeightCreateInput) (*usecase.WeightCreateOutput, error)
	WeightList(ctx context.Context) (*usecase.WeightListOutput, error)
	WeightDelete(ctx context.Context, in usecase.WeightDeleteInput) error

	TodoCreate(ctx context.Context, in usecase.TodoCreateInput) (*usecase.TodoCreateOutput, error)
	TodoList(ctx context.Context) (*usecase.TodoListOutput, error)
	TodoToggle(ctx context.Context, in usecase.TodoToggleInput) (*usecase.TodoToggleOutput, error)
	TodoDelete(ctx context.Context, in usecase.TodoDeleteInput) error

	WorkoutCreate(ctx context.Context, in usecase.WorkoutCreateInput) (*usecase.WorkoutCreateOutput, error)
	WorkoutList(ctx context.Context) (*usecase.WorkoutListOutput, error)
	WorkoutDelete(ctx context.Context, in usecase.WorkoutDeleteInput) error

	GoalCreate(ctx context.Context, in usecase.GoalCreateInput) (*usecase.GoalCreateOutput, error)
	GoalList(ctx context.Context) (*usecase.GoalListOutput, error)
	GoalAchieve(ctx context.Context, in usecase.GoalAchieveInput) (*usecase.GoalAchieveOutput, error)
	GoalDelete(ctx context.Context, in usecase.GoalDeleteInput) error

	ShortcutCreate(ctx context.Context, in usecase.ShortcutCreateInput) (*usecase.ShortcutCreateOutput, error)
	ShortcutList(ctx context.Context) (*usecase.ShortcutListOutput, error)
	ShortcutDelete(ctx context.Context, in usecase.ShortcutDeleteInput) error

	Export(ctx context.Context) (*usecase.ExportOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/tracker/weights", end.WeightCreate)
	r.GET("/api/v1/tracker/weights", end.WeightList)
	r.DELETE("/api/v1/tracker/weights/:id", end.WeightDelete)

	r.POST("/api/v1/tracker/todos", end.TodoCreate)
	r.GET("/api/v1/tracker/todos", end.TodoList)
	r.PATCH("/api/v1/tracker/todos/:id/toggle", end.TodoToggle)
	r.DELETE("/api/v1/tracker/todos/:id", end.TodoDelete)

	r.POST("/api/v1/tracker/workouts", end.WorkoutCreate)
	r.GET("/api/v1/tracker/workouts", end.WorkoutList)
	r.DELETE("/api/v1/tracker/workouts/:id", end.WorkoutDelete)

	r.POST("/api/v1/tracker/goals", end.GoalCreate)
	r.GET("/api/v1/tracker/goals", end.GoalList)
	r.PATCH("/api/v1/tracker/goals/:id/achieve", end.GoalAchieve)
	r.DELETE("/api/v1/tracker/goals/:id", end.GoalDelete)

	r.POST("/api/v1/tracker/shortcuts", end.ShortcutCreate)
	r.GET("/api/v1/tracker/shortcuts", end.ShortcutList)
	r.DELETE("/api/v1/tracker/shortcuts/:id", end.ShortcutDelete)

	r.POST("/api/v1/tracker/export", end.Export)
}
