package usecase

import (
	"context"
	"testing"
	"time"
)

func TestConsumeReminderDueSendsMail(t *testing.T) {
	uc, deps := newTestUsecase("me@example.com")
	ctx := context.Background()

	in := ConsumeReminderDueInput{ReminderID: 7, Message: "water the plants", RemindAt: "2026-08-30T09:00:00Z"}
	if err := uc.ConsumeReminderDue(ctx, in); err != nil {
		t.Fatalf("ConsumeReminderDue() error = %v", err)
	}

	if len(deps.mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(deps.mailer.sent))
	}
	msg := deps.mailer.sent[0]
	if msg.To[0] != "me@example.com" {
		t.Fatalf("mail recipient = %q", msg.To[0])
	}
	if msg.Subject != "Reminder: water the plants" {
		t.Fatalf("mail subject = %q", msg.Subject)
	}
}

func TestConsumeReminderDueMailFailureIsReturned(t *testing.T) {
	uc, deps := newTestUsecase("me@example.com")
	deps.mailer.failNext = true

	err := uc.ConsumeReminderDue(context.Background(), ConsumeReminderDueInput{ReminderID: 7, Message: "x"})
	if err == nil {
		t.Fatal("ConsumeReminderDue() swallowed the mail failure")
	}
}

func TestConsumeReminderDueWithoutRecipient(t *testing.T) {
	uc, deps := newTestUsecase("")

	if err := uc.ConsumeReminderDue(context.Background(), ConsumeReminderDueInput{ReminderID: 7, Message: "x"}); err != nil {
		t.Fatalf("ConsumeReminderDue() error = %v", err)
	}
	if len(deps.mailer.sent) != 0 {
		t.Fatal("mail was sent without a configured recipient")
	}
}

func TestConsumeReminderDueBroadcastsToSubscribers(t *testing.T) {
	uc, _ := newTestUsecase("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := uc.Subscribe(ctx)

	in := ConsumeReminderDueInput{ReminderID: 9, Message: "standup", RemindAt: "2026-08-30T09:30:00Z"}
	if err := uc.ConsumeReminderDue(context.Background(), in); err != nil {
		t.Fatalf("ConsumeReminderDue() error = %v", err)
	}

	select {
	case evt := <-events:
		if evt.ReminderID != 9 || evt.Message != "standup" {
			t.Fatalf("received event %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the due event")
	}
}

func TestSubscribeCleanupOnCancel(t *testing.T) {
	uc, _ := newTestUsecase("")

	ctx, cancel := context.WithCancel(context.Background())
	events := uc.Subscribe(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				uc.mu.Lock()
				n := len(uc.subscribers)
				uc.mu.Unlock()
				if n != 0 {
					t.Fatalf("%d subscribers left after cancel", n)
				}
				return
			}
		case <-deadline:
			t.Fatal("subscriber channel was not closed after cancel")
		}
	}
}
