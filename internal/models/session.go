package models

import "time"

// Session is the server-side record of an issued session token. Only one
// session per username is live at a time.
type Session struct {
	JTI       string    `json:"jti"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
