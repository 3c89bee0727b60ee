package usecase

import (
	"context"
	"testing"
	"time"
)

var day = time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

func TestWeightLifecycle(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	created, err := uc.WeightCreate(context.Background(), WeightCreateInput{
		MeasuredOn: day, Kilograms: 82.4, Note: "morning",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := uc.WeightList(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Weights) != 1 || list.Weights[0].Kilograms != 82.4 {
		t.Fatalf("unexpected list: %+v", list.Weights)
	}

	if err := uc.WeightDelete(context.Background(), WeightDeleteInput{ID: created.Weight.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.WeightDelete(context.Background(), WeightDeleteInput{ID: created.Weight.ID}); err == nil {
		t.Fatalf("expected second delete to fail")
	}
}

func TestWeightCreateValidation(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	tests := []struct {
		name string
		in   WeightCreateInput
	}{
		{name: "MissingDate", in: WeightCreateInput{Kilograms: 80}},
		{name: "ZeroKilograms", in: WeightCreateInput{MeasuredOn: day}},
		{name: "NegativeKilograms", in: WeightCreateInput{MeasuredOn: day, Kilograms: -5}},
		{name: "AbsurdKilograms", in: WeightCreateInput{MeasuredOn: day, Kilograms: 900}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.WeightCreate(context.Background(), tt.in); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestTodoToggle(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	created, err := uc.TodoCreate(context.Background(), TodoCreateInput{Title: "buy oats"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Todo.Done {
		t.Fatalf("new todo must start not done")
	}

	toggled, err := uc.TodoToggle(context.Background(), TodoToggleInput{ID: created.Todo.ID})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Todo.Done {
		t.Fatalf("expected todo to be done after toggle")
	}

	toggled, err = uc.TodoToggle(context.Background(), TodoToggleInput{ID: created.Todo.ID})
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.Todo.Done {
		t.Fatalf("expected todo to be open again")
	}

	if _, err := uc.TodoToggle(context.Background(), TodoToggleInput{ID: 999}); err == nil {
		t.Fatalf("expected toggle of a missing todo to fail")
	}
}

func TestGoalAchieveIdempotent(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	created, err := uc.GoalCreate(context.Background(), GoalCreateInput{Title: "run a marathon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := uc.GoalAchieve(context.Background(), GoalAchieveInput{ID: created.Goal.ID})
	if err != nil {
		t.Fatalf("achieve: %v", err)
	}
	if !first.Goal.Achieved || first.Goal.AchievedAt == nil {
		t.Fatalf("expected goal to be achieved: %+v", first.Goal)
	}

	second, err := uc.GoalAchieve(context.Background(), GoalAchieveInput{ID: created.Goal.ID})
	if err != nil {
		t.Fatalf("achieve again: %v", err)
	}
	if !second.Goal.AchievedAt.Equal(*first.Goal.AchievedAt) {
		t.Fatalf("achieving twice must keep the original timestamp")
	}
}

func TestWorkoutValidation(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	if _, err := uc.WorkoutCreate(context.Background(), WorkoutCreateInput{
		PerformedOn: day, Activity: "run", DurationMin: 0,
	}); err == nil {
		t.Fatalf("expected zero duration to be rejected")
	}

	if _, err := uc.WorkoutCreate(context.Background(), WorkoutCreateInput{
		PerformedOn: day, Activity: "run", DurationMin: 45,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestShortcutValidation(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), newFakeStorage())

	if _, err := uc.ShortcutCreate(context.Background(), ShortcutCreateInput{
		Title: "bank", URL: "not a url",
	}); err == nil {
		t.Fatalf("expected invalid url to be rejected")
	}

	created, err := uc.ShortcutCreate(context.Background(), ShortcutCreateInput{
		Title: "bank", URL: "https://bank.example.com", Position: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := uc.ShortcutDelete(context.Background(), ShortcutDeleteInput{ID: created.Shortcut.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
