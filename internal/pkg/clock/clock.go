package clock

import "time"

// Clocker abstracts the current time so callers can inject a fake in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker reading the system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock that always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the configured instant.
func (f Fixed) Now() time.Time {
	return f.At
}
