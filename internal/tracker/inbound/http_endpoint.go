package inbound

import (
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/tracker/usecase"
)

// HTTPEndpoint exposes the dashboard CRUD handlers.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) WeightCreate(r *router.Request) (any, error) {
	var req WeightCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	measuredOn, err := parseDate(req.MeasuredOn, "measured_on")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.WeightCreate(r.Context(), usecase.WeightCreateInput{
		MeasuredOn: measuredOn,
		Kilograms:  req.Kilograms,
		Note:       req.Note,
	})
	if err != nil {
		return nil, err
	}

	return newWeightResponse(resp.Weight), nil
}

func (h *HTTPEndpoint) WeightList(r *router.Request) (any, error) {
	resp, err := h.uc.WeightList(r.Context())
	if err != nil {
		return nil, err
	}

	return newWeightListResponse(resp.Weights), nil
}

func (h *HTTPEndpoint) WeightDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.WeightDelete(r.Context(), usecase.WeightDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) TodoCreate(r *router.Request) (any, error) {
	var req TodoCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoCreate(r.Context(), usecase.TodoCreateInput{Title: req.Title})
	if err != nil {
		return nil, err
	}

	return newTodoResponse(resp.Todo), nil
}

func (h *HTTPEndpoint) TodoList(r *router.Request) (any, error) {
	resp, err := h.uc.TodoList(r.Context())
	if err != nil {
		return nil, err
	}

	return newTodoListResponse(resp.Todos), nil
}

func (h *HTTPEndpoint) TodoToggle(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoToggle(r.Context(), usecase.TodoToggleInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newTodoResponse(resp.Todo), nil
}

func (h *HTTPEndpoint) TodoDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.TodoDelete(r.Context(), usecase.TodoDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) WorkoutCreate(r *router.Request) (any, error) {
	var req WorkoutCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	performedOn, err := parseDate(req.PerformedOn, "performed_on")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.WorkoutCreate(r.Context(), usecase.WorkoutCreateInput{
		PerformedOn: performedOn,
		Activity:    req.Activity,
		DurationMin: req.DurationMin,
		Note:        req.Note,
	})
	if err != nil {
		return nil, err
	}

	return newWorkoutResponse(resp.Workout), nil
}

func (h *HTTPEndpoint) WorkoutList(r *router.Request) (any, error) {
	resp, err := h.uc.WorkoutList(r.Context())
	if err != nil {
		return nil, err
	}

	return newWorkoutListResponse(resp.Workouts), nil
}

func (h *HTTPEndpoint) WorkoutDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.WorkoutDelete(r.Context(), usecase.WorkoutDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) GoalCreate(r *router.Request) (any, error) {
	var req GoalCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.GoalCreate(r.Context(), usecase.GoalCreateInput{Title: req.Title})
	if err != nil {
		return nil, err
	}

	return newGoalResponse(resp.Goal), nil
}

func (h *HTTPEndpoint) GoalList(r *router.Request) (any, error) {
	resp, err := h.uc.GoalList(r.Context())
	if err != nil {
		return nil, err
	}

	return newGoalListResponse(resp.Goals), nil
}

func (h *HTTPEndpoint) GoalAchieve(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.GoalAchieve(r.Context(), usecase.GoalAchieveInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newGoalResponse(resp.Goal), nil
}

func (h *HTTPEndpoint) GoalDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.GoalDelete(r.Context(), usecase.GoalDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) ShortcutCreate(r *router.Request) (any, error) {
	var req ShortcutCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ShortcutCreate(r.Context(), usecase.ShortcutCreateInput{
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
	})
	if err != nil {
		return nil, err
	}

	return newShortcutResponse(resp.Shortcut), nil
}

func (h *HTTPEndpoint) ShortcutList(r *router.Request) (any, error) {
	resp, err := h.uc.ShortcutList(r.Context())
	if err != nil {
		return nil, err
	}

	return newShortcutListResponse(resp.Shortcuts), nil
}

func (h *HTTPEndpoint) ShortcutDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ShortcutDelete(r.Context(), usecase.ShortcutDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) Export(r *router.Request) (any, error) {
	resp, err := h.uc.Export(r.Context())
	if err != nil {
		return nil, err
	}

	return ExportResponse{
		ObjectKey:   resp.Export.ObjectKey,
		DownloadURL: resp.Export.DownloadURL,
		Rows:        resp.Export.Rows,
		GeneratedAt: resp.Export.GeneratedAt,
	}, nil
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, goerror.NewInvalidFormat(field + " must be YYYY-MM-DD")
	}

	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, goerror.NewInvalidFormat(field + " must be YYYY-MM-DD")
	}

	return date, nil
}
