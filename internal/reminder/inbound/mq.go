package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/goroutine"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/messaging"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.reminder.consumer_names")

	var consumers = []struct {
		name         string
		topic        string // destination where publisher sent message
		consumerName string // channel (NSQ), queue group (NATS), group (Kafka)
		handler      messaging.Handler
	}{
		{
			name:         event.ReminderDueConsumerNotifier,
			topic:        event.ReminderDueDestination,
			consumerName: event.ReminderDueConsumerNotifier,
			handler:      mqHandler.ReminderDueNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.consumerName),
					messaging.WithQueueGroup(consumer.consumerName),
					messaging.WithGroup(consumer.consumerName),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
				)
			})
		}
	}
}
