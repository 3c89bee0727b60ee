package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/mail"
)

// DueEvent is what SSE subscribers receive for each due reminder.
type DueEvent struct {
	ReminderID int64  `json:"reminder_id,string"`
	Message    string `json:"message"`
	RemindAt   string `json:"remind_at"`
}

type ConsumeReminderDueInput struct {
	ReminderID int64
	Message    string
	RemindAt   string
}

// ConsumeReminderDue handles a reminder.due event from the broker: it mails
// the configured recipient and fans the event out to SSE subscribers.
//
// A mail failure is returned so the broker can redeliver; the SSE fan-out
// is best effort either way.
func (s *Usecase) ConsumeReminderDue(ctx context.Context, in ConsumeReminderDueInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeReminderDue")
	defer span.End()

	evt := DueEvent{
		ReminderID: in.ReminderID,
		Message:    in.Message,
		RemindAt:   in.RemindAt,
	}
	s.broadcast(evt)

	recipient := s.cfg.GetString("modules.reminder.mail.recipient")
	if recipient == "" {
		slog.WarnContext(ctx, "no reminder mail recipient configured, skipping mail")
		return nil
	}

	msg := mail.Message{
		From:     s.cfg.GetString("modules.reminder.mail.sender"),
		To:       []string{recipient},
		Subject:  "Reminder: " + in.Message,
		TextBody: fmt.Sprintf("%s\n\nScheduled for %s.", in.Message, in.RemindAt),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send reminder mail", "reminder_id", in.ReminderID, "error", err)
		return err
	}

	return nil
}

// Subscribe registers an SSE listener. The channel is closed and removed
// when ctx is done. Slow subscribers drop events instead of blocking the
// consumer.
func (s *Usecase) Subscribe(ctx context.Context) <-chan DueEvent {
	ch := make(chan DueEvent, 8)

	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Usecase) broadcast(evt DueEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- evt:
		default:
		}
	}
}
