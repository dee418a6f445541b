// Package forms decodes and validates the login and signup forms.
package forms

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// PasswordMismatch is the form-level error key set when the confirmation
// differs from the password.
const PasswordMismatch = "passwordMismatch"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps a form field name to the first rule it failed.
// The PasswordMismatch key is set for the cross-field confirmation rule.
type Errors map[string]string

// Valid reports whether no rule failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Has reports whether the field failed a rule.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ParseCredentials reads the login form from the request body.
func ParseCredentials(r *http.Request) (models.Credentials, error) {
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}, nil
}

// ParseSignup reads the signup form from the request body.
func ParseSignup(r *http.Request) (models.SignupRequest, error) {
	if err := r.ParseForm(); err != nil {
		return models.SignupRequest{}, err
	}
	return models.SignupRequest{
		Name:                 r.PostForm.Get("name"),
		Email:                r.PostForm.Get("email"),
		Password:             r.PostForm.Get("password"),
		PasswordConfirmation: r.PostForm.Get("password_confirmation"),
	}, nil
}

// ValidateCredentials checks the login rules: email required and well formed,
// password required.
func ValidateCredentials(c models.Credentials) Errors {
	return check(c)
}

// ValidateSignup checks the signup rules, including the password confirmation.
func ValidateSignup(s models.SignupRequest) Errors {
	return check(s)
}

func check(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "eqfield" {
			out[PasswordMismatch] = "Passwords do not match"
		}
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return "Invalid value"
	}
}
