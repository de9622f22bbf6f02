package domain

import "time"

// Session maps an opaque token to a logged-in user. Sessions live server
// side; the browser only carries the token.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
