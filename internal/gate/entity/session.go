package entity

import "time"

// Session is an authenticated browser session.
//
// The opaque session token never touches the store; sessions are keyed by an
// HMAC of the token.
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
//
// Expiry is checked on every read rather than trusting the store TTL alone.
func (s Session) Expired(at time.Time) bool {
	return !at.Before(s.ExpiresAt)
}
