package usecase

import (
	"context"
	"testing"
	"time"
)

var day = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

func TestMealLifecycle(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo, &fakeFoodAPI{})

	created, err := uc.MealCreate(context.Background(), MealCreateInput{
		Name: "Oatmeal", EatenOn: day, Calories: 380, Protein: 13, Carbs: 67, Fat: 7,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Meal.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	if _, err := uc.MealCreate(context.Background(), MealCreateInput{
		Name: "Coffee", EatenOn: day, Calories: 2,
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := uc.MealList(context.Background(), MealListInput{Date: day})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(list.Meals))
	}

	sum, err := uc.Summary(context.Background(), SummaryInput{Date: day})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Summary.Meals != 2 || sum.Summary.Calories != 382 {
		t.Fatalf("unexpected summary: %+v", sum.Summary)
	}

	if err := uc.MealDelete(context.Background(), MealDeleteInput{ID: created.Meal.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := uc.MealDelete(context.Background(), MealDeleteInput{ID: created.Meal.ID}); err == nil {
		t.Fatalf("expected delete of a missing meal to fail")
	}
}

func TestMealCreateValidation(t *testing.T) {
	uc := newTestUsecase(newFakeRepo(), &fakeFoodAPI{})

	if _, err := uc.MealCreate(context.Background(), MealCreateInput{EatenOn: day}); err == nil {
		t.Fatalf("expected missing name to be rejected")
	}
	if _, err := uc.MealCreate(context.Background(), MealCreateInput{Name: "x", EatenOn: day, Calories: -1}); err == nil {
		t.Fatalf("expected negative calories to be rejected")
	}
}
