package inbound

import (
	"time"

	"github.com/muhdemir/lifehub/internal/reminder/entity"
	"github.com/samber/lo"
)

type CreateRequest struct {
	Message  string    `json:"message"`
	RemindAt time.Time `json:"remind_at"`
}

type ReminderResponse struct {
	ID         int64     `json:"id,string"`
	Message    string    `json:"message"`
	RemindAt   time.Time `json:"remind_at"`
	Dispatched bool      `json:"dispatched"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReminderResponse(r entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:         r.ID,
		Message:    r.Message,
		RemindAt:   r.RemindAt,
		Dispatched: r.Dispatched,
		CreatedAt:  r.CreatedAt,
	}
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

func newReminderListResponse(rs []entity.Reminder) ReminderListResponse {
	return ReminderListResponse{
		Reminders: lo.Map(rs, func(r entity.Reminder, _ int) ReminderResponse {
			return newReminderResponse(r)
		}),
	}
}

type DeleteResponse struct{}

func (DeleteResponse) Message() string {
	return "Reminder deleted"
}
