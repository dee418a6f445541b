package models

// Credentials represents the login form posted by the browser
// swagger:model Credentials
type Credentials struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" form:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginData is the data part of a backend login response
type LoginData struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// LoginResult is what a successful employee login leaves behind.
type LoginResult struct {
	Status int    // Status field reported by the backend
	Msg    string // Backend message shown in the success notice
	Name   string // Display name stored in the session
}
