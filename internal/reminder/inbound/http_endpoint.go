package inbound

import (
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/reminder/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Create(r.Context(), usecase.CreateInput{
		Message:  req.Message,
		RemindAt: req.RemindAt,
	})
	if err != nil {
		return nil, err
	}

	return newReminderResponse(out.Reminder), nil
}

func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	out, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return newReminderListResponse(out.Reminders), nil
}

func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("id must be a number")
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}
