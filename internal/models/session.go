package models

import "github.com/google/uuid"

// Session keys, shared with every page that authorizes backend requests.
const (
	SessionTokenField = "token"
	SessionNameField  = "name"
)

// Session is the per-browser record holding the backend token and display name.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
	Name  string    `json:"name"`
}

// Authenticated reports whether the session carries a backend token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
