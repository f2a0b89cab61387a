package session

import "github.com/google/uuid"

// NewSessionID returns a random identifier for one session.
func NewSessionID() string {
	return uuid.NewString()
}

func ensureSessionID(next func() string) string {
	if next == nil {
		next = NewSessionID
	}
	return next()
}
