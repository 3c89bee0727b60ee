package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/messaging"
	"github.com/muhdemir/lifehub/internal/reminder/entity"
	"github.com/muhdemir/lifehub/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishReminderDue(ctx context.Context, r entity.Reminder) error {
	ctx, span := m.ins.Tracer("reminder.outbound.mq").Start(ctx, "PublishReminderDue")
	defer span.End()

	body, err := json.Marshal(event.ReminderDueMessage{
		ReminderID: r.ID,
		Message:    r.Message,
		RemindAt:   r.RemindAt.Format(time.RFC3339),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.ReminderDueDestination, messaging.OutgoingMessage{
		Body:       body,
		Headers:    []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
		Attributes: map[string]string{keyOfCorrelationID: cID},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
