package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/messaging"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/reminder/usecase"
	"github.com/muhdemir/lifehub/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, attrs map[string]string) context.Context {
	if cID, ok := attrs[keyOfCorrelationID]; ok && cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) ReminderDueNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Attributes())

	ctx, span := h.ins.Tracer("reminder.inbound.mq").Start(ctx, "ReminderDueNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: reminder due notification", "msg_body", string(body))

	var payload event.ReminderDueMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of reminder due notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeReminderDue(ctx, usecase.ConsumeReminderDueInput{
		ReminderID: payload.ReminderID,
		Message:    payload.Message,
		RemindAt:   payload.RemindAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume reminder due", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
