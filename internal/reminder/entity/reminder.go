package entity

import "time"

// Reminder is a one-shot note scheduled for a point in time.
type Reminder struct {
	ID         int64
	Message    string
	RemindAt   time.Time
	Dispatched bool
	CreatedAt  time.Time
}
