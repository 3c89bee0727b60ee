package inbound

import (
	"time"

	"github.com/muhdemir/lifehub/internal/tracker/entity"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

type WeightCreateRequest struct {
	MeasuredOn string  `json:"measured_on"`
	Kilograms  float64 `json:"kilograms"`
	Note       string  `json:"note"`
}

type WeightResponse struct {
	ID         int64   `json:"id,string"`
	MeasuredOn string  `json:"measured_on"`
	Kilograms  float64 `json:"kilograms"`
	Note       string  `json:"note,omitempty"`
}

func newWeightResponse(w entity.Weight) WeightResponse {
	return WeightResponse{
		ID:         w.ID,
		MeasuredOn: w.MeasuredOn.Format(dateLayout),
		Kilograms:  w.Kilograms,
		Note:       w.Note,
	}
}

type WeightListResponse struct {
	Weights []WeightResponse `json:"weights"`
}

func newWeightListResponse(ws []entity.Weight) WeightListResponse {
	return WeightListResponse{
		Weights: lo.Map(ws, func(w entity.Weight, _ int) WeightResponse {
			return newWeightResponse(w)
		}),
	}
}

type TodoCreateRequest struct {
	Title string `json:"title"`
}

type TodoResponse struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

func newTodoResponse(t entity.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
	}
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

func newTodoListResponse(ts []entity.Todo) TodoListResponse {
	return TodoListResponse{
		Todos: lo.Map(ts, func(t entity.Todo, _ int) TodoResponse {
			return newTodoResponse(t)
		}),
	}
}

type WorkoutCreateRequest struct {
	PerformedOn string `json:"performed_on"`
	Activity    string `json:"activity"`
	DurationMin int    `json:"duration_min"`
	Note        string `json:"note"`
}

type WorkoutResponse struct {
	ID          int64  `json:"id,string"`
	PerformedOn string `json:"performed_on"`
	Activity    string `json:"activity"`
	DurationMin int    `json:"duration_min"`
	Note        string `json:"note,omitempty"`
}

func newWorkoutResponse(w entity.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          w.ID,
		PerformedOn: w.PerformedOn.Format(dateLayout),
		Activity:    w.Activity,
		DurationMin: w.DurationMin,
		Note:        w.Note,
	}
}

type WorkoutListResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
}

func newWorkoutListResponse(ws []entity.Workout) WorkoutListResponse {
	return WorkoutListResponse{
		Workouts: lo.Map(ws, func(w entity.Workout, _ int) WorkoutResponse {
			return newWorkoutResponse(w)
		}),
	}
}

type GoalCreateRequest struct {
	Title string `json:"title"`
}

type GoalResponse struct {
	ID         int64      `json:"id,string"`
	Title      string     `json:"title"`
	Achieved   bool       `json:"achieved"`
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func newGoalResponse(g entity.Goal) GoalResponse {
	return GoalResponse{
		ID:         g.ID,
		Title:      g.Title,
		Achieved:   g.Achieved,
		AchievedAt: g.AchievedAt,
		CreatedAt:  g.CreatedAt,
	}
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

func newGoalListResponse(gs []entity.Goal) GoalListResponse {
	return GoalListResponse{
		Goals: lo.Map(gs, func(g entity.Goal, _ int) GoalResponse {
			return newGoalResponse(g)
		}),
	}
}

type ShortcutCreateRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type ShortcutResponse struct {
	ID       int64  `json:"id,string"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func newShortcutResponse(sc entity.Shortcut) ShortcutResponse {
	return ShortcutResponse{
		ID:       sc.ID,
		Title:    sc.Title,
		URL:      sc.URL,
		Position: sc.Position,
	}
}

type ShortcutListResponse struct {
	Shortcuts []ShortcutResponse `json:"shortcuts"`
}

func newShortcutListResponse(scs []entity.Shortcut) ShortcutListResponse {
	return ShortcutListResponse{
		Shortcuts: lo.Map(scs, func(sc entity.Shortcut, _ int) ShortcutResponse {
			return newShortcutResponse(sc)
		}),
	}
}

type DeleteResponse struct{}

func (DeleteResponse) Message() string {
	return "Entry deleted"
}

type ExportResponse struct {
	ObjectKey   string    `json:"object_key"`
	DownloadURL string    `json:"download_url"`
	Rows        int       `json:"rows"`
	GeneratedAt time.Time `json:"generated_at"`
}
