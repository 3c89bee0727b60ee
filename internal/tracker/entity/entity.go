package entity

import "time"

// Weight is one body-weight measurement.
type Weight struct {
	ID         int64
	MeasuredOn time.Time
	Kilograms  float64
	Note       string
}

// Todo is a single checklist item.
type Todo struct {
	ID        int64
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Workout is one logged training session.
type Workout struct {
	ID          int64
	PerformedOn time.Time
	Activity    string
	DurationMin int
	Note        string
}

// Goal is a long-running target the dashboard tracks.
type Goal struct {
	ID         int64
	Title      string
	Achieved   bool
	AchievedAt *time.Time
	CreatedAt  time.Time
}

// Shortcut is a pinned link on the dashboard.
type Shortcut struct {
	ID       int64
	Title    string
	URL      string
	Position int
}

// Export describes a finished weight-history export.
type Export struct {
	ObjectKey   string
	DownloadURL string
	Rows        int
	GeneratedAt time.Time
}
