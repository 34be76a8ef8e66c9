package domain

import "time"

// LoginAttempt is an immutable audit record appended on every login request,
// successful or not. UserID is empty when the identifier resolved to nobody.
type LoginAttempt struct {
	ID                  string    `json:"id"`
	Timestamp           time.Time `json:"timestamp"`
	AttemptedIdentifier string    `json:"attemptedIdentifier"`
	Success             bool      `json:"success"`
	UserID              string    `json:"userId,omitempty"`
	IPAddress           string    `json:"ipAddress"`
	UserAgent           string    `json:"userAgent"`
}
