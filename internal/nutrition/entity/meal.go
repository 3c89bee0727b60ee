package entity

import "time"

// Meal is one logged eating event.
type Meal struct {
	ID       int64
	Name     string
	EatenOn  time.Time
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// DailySummary totals the macros logged on one day.
type DailySummary struct {
	Date     time.Time
	Meals    int
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}
