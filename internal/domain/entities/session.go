package entities

import "time"

// Session is a logged-in store manager. The bearer token is the only data the
// service persists.
type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return s.Token == "" || (!s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt))
}
