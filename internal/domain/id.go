package domain

import "github.com/google/uuid"

// NewSessionID returns a fresh identifier for one countdown run.
func NewSessionID() string {
	return uuid.NewString()
}
