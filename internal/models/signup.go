package models

// SignupRequest represents the registration form posted by the browser
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// example: John Doe
	Name string `json:"name" form:"name" validate:"required,min=3"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" form:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" form:"password" validate:"required,min=8"`

	// Password confirmation, must equal Password
	// required: true
	// example: secret123
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" validate:"required,eqfield=Password"`
}

// SignupResult is what a successful signup reports back.
type SignupResult struct {
	Status int
	Msg    string
}
