package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultScanInterval = 30 * time.Second
const defaultDispatchBatch = 50

// Run is the dispatcher loop. It scans for due reminders on a fixed
// interval, publishes each to the broker and marks it dispatched. Only one
// loop runs at a time; a second Run returns immediately.
func (s *Usecase) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	interval := s.cfg.GetSecond("modules.reminder.scan_interval_seconds")
	if interval <= 0 {
		interval = defaultScanInterval
	}

	slog.InfoContext(ctx, "reminder dispatcher started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "reminder dispatcher stopped")
			return nil

		case <-ticker.C:
			if err := s.DispatchDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.ErrorContext(ctx, "reminder dispatch pass failed", "error", err)
			}
		}
	}
}

// DispatchDue runs one scan pass. A reminder is marked dispatched only after
// its event was published; a publish failure leaves it due for the next pass.
func (s *Usecase) DispatchDue(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "DispatchDue")
	defer span.End()

	batch := s.cfg.GetInt32("modules.reminder.dispatch_batch_size")
	if batch <= 0 {
		batch = defaultDispatchBatch
	}

	due, err := s.repoDB.ListDue(ctx, s.clock.Now(), batch)
	if err != nil {
		return err
	}

	for _, r := range due {
		if err := s.repoMessaging.PublishReminderDue(ctx, r); err != nil {
			slog.ErrorContext(ctx, "failed to publish due reminder", "reminder_id", r.ID, "error", err)
			continue
		}

		if err := s.repoDB.MarkDispatched(ctx, r.ID); err != nil {
			slog.ErrorContext(ctx, "failed to mark reminder dispatched", "reminder_id", r.ID, "error", err)
		}
	}

	return nil
}
