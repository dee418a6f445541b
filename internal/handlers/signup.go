package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-auth-web/internal/forms"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/services"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResult, error)
}

// NewSignupPageHandler returns an HTTP handler rendering the signup form.
// @Summary Signup page
// @Description Render the signup form; browsers holding a token are sent to /
// @Tags auth
// @Produce html
// @Success 200 {string} string "Signup form"
// @Success 303 {string} string "Redirect to /"
// @Router /signup [get]
func NewSignupPageHandler(flasher Flasher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(renderer, w, http.StatusOK, views.PageSignup, views.PageData{
			Title:  "Sign up",
			Notice: pendingNotice(flasher, w, r),
		})
	}
}

// NewSignupHandler returns an HTTP handler for the signup form.
// @Summary Employee signup
// @Description Validate the form and register the user with the backend
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Display name" default(John Doe)
// @Param email formData string true "Email" default(john@example.com)
// @Param password formData string true "Password" default(secret123)
// @Param password_confirmation formData string true "Password confirmation" default(secret123)
// @Success 303 {string} string "Redirect to /login"
// @Failure 400 {string} string "Malformed form body"
// @Failure 422 {string} string "Invalid form or email already taken"
// @Failure 502 {string} string "Backend rejected the signup"
// @Failure 500 {string} string "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, flasher Flasher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := forms.ParseSignup(r)
		if err != nil {
			render(renderer, w, http.StatusBadRequest, views.PageSignup, views.PageData{
				Title:  "Sign up",
				Notice: noticePtr(signupErrorNotice),
			})
			return
		}

		data := views.PageData{
			Title: "Sign up",
			Values: map[string]string{
				"name":  req.Name,
				"email": req.Email,
			},
		}

		if errs := forms.ValidateSignup(req); !errs.Valid() {
			data.Errors = errs
			render(renderer, w, http.StatusUnprocessableEntity, views.PageSignup, data)
			return
		}

		res, err := svc.Signup(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("signup failed", "email", req.Email, "err", err)
			switch {
			case errors.Is(err, services.ErrEmailAlreadyTaken):
				data.Notice = noticePtr(emailTakenNotice)
				render(renderer, w, http.StatusUnprocessableEntity, views.PageSignup, data)
			case errors.Is(err, services.ErrSignupFailed):
				data.Notice = noticePtr(signupErrorNotice)
				render(renderer, w, http.StatusBadGateway, views.PageSignup, data)
			default:
				data.Notice = noticePtr(signupErrorNotice)
				render(renderer, w, http.StatusInternalServerError, views.PageSignup, data)
			}
			return
		}

		flasher.Write(w, backendNotice(res.Status, res.Msg))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
