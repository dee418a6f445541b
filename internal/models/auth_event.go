package models

import (
	"time"

	"github.com/google/uuid"
)

// Auth event actions
const (
	ActionLogin      = "login"
	ActionOAuthLogin = "oauth_login"
	ActionSignup     = "signup"
	ActionLogout     = "logout"
)

// Auth event outcomes
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeEmailTaken         = "email_taken"
	OutcomeFailed             = "failed"
	OutcomeInvalidState       = "invalid_state"
)

// AuthEvent is one audited authentication attempt
type AuthEvent struct {
	EventID   uuid.UUID `json:"event_id" db:"event_id"`     // Primary key
	Action    string    `json:"action" db:"action"`         // login, oauth_login, signup, logout
	Email     string    `json:"email" db:"email"`           // Submitted email, empty for oauth/logout
	Outcome   string    `json:"outcome" db:"outcome"`       // success or failure reason
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Event timestamp
}

// NewAuthEvent creates an event stamped with a fresh id and the current time.
func NewAuthEvent(action, email, outcome string) AuthEvent {
	return AuthEvent{
		EventID:   uuid.New(),
		Action:    action,
		Email:     email,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}
}
