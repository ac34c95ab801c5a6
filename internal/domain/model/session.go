package model

import "time"

// Session is one bearer credential. The token itself is the storage key and
// is never logged.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Actor returns the authorization principal for the session.
func (s Session) Actor() Actor {
	return Actor{ID: s.UserID, Role: s.Role}
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
