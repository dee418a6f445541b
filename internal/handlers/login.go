package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/forms"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/services"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, sessionID uuid.UUID, creds models.Credentials) (*models.LoginResult, error)
}

// OAuthCompleter stores the token handed back by the OAuth redirect.
type OAuthCompleter interface {
	Complete(ctx context.Context, sessionID uuid.UUID, state, token, name string) error
}

// NewLoginPageHandler returns an HTTP handler rendering the login form.
// A request carrying a token query parameter is the OAuth callback: the
// token and name are stored and the browser is sent to /home.
// @Summary Login page
// @Description Render the login form, or complete the external OAuth login
// @Tags auth
// @Produce html
// @Param token query string false "Token issued by the OAuth flow"
// @Param name query string false "Display name issued by the OAuth flow"
// @Param state query string false "State issued by /login/google"
// @Success 200 {string} string "Login form"
// @Success 303 {string} string "Redirect to /home"
// @Failure 400 {string} string "Invalid OAuth state"
// @Failure 500 {string} string "Internal server error"
// @Router /login [get]
func NewLoginPageHandler(oauth OAuthCompleter, flasher Flasher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		if token := q.Get("token"); token != "" {
			err := oauth.Complete(ctx, middlewares.SessionIDFromContext(ctx), q.Get("state"), token, q.Get("name"))
			switch {
			case err == nil:
				http.Redirect(w, r, "/home", http.StatusSeeOther)
			case errors.Is(err, services.ErrInvalidOAuthState):
				render(renderer, w, http.StatusBadRequest, views.PageLogin, views.PageData{
					Title:  "Login",
					Notice: noticePtr(invalidStateNotice),
				})
			default:
				logger.Log.Errorw("oauth callback failed", "err", err)
				render(renderer, w, http.StatusInternalServerError, views.PageLogin, views.PageData{
					Title:  "Login",
					Notice: noticePtr(internalErrorNotice),
				})
			}
			return
		}

		render(renderer, w, http.StatusOK, views.PageLogin, views.PageData{
			Title:  "Login",
			Notice: pendingNotice(flasher, w, r),
		})
	}
}

// NewLoginHandler returns an HTTP handler for the employee login form.
// @Summary Employee login
// @Description Validate the form, authenticate against the backend and store the token in the session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email" default(john@example.com)
// @Param password formData string true "Password" default(secret123)
// @Success 303 {string} string "Redirect to /"
// @Failure 400 {string} string "Malformed form body"
// @Failure 401 {string} string "Error with your credentials"
// @Failure 422 {string} string "Invalid form"
// @Failure 500 {string} string "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, flasher Flasher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		creds, err := forms.ParseCredentials(r)
		if err != nil {
			render(renderer, w, http.StatusBadRequest, views.PageLogin, views.PageData{
				Title:  "Login",
				Notice: noticePtr(invalidLoginFormNotice),
			})
			return
		}

		data := views.PageData{
			Title:  "Login",
			Values: map[string]string{"email": creds.Email},
		}

		if errs := forms.ValidateCredentials(creds); !errs.Valid() {
			data.Errors = errs
			data.Notice = noticePtr(invalidLoginFormNotice)
			render(renderer, w, http.StatusUnprocessableEntity, views.PageLogin, data)
			return
		}

		res, err := svc.Login(ctx, middlewares.SessionIDFromContext(ctx), creds)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLoginFailed):
				data.Notice = noticePtr(credentialsNotice)
				render(renderer, w, http.StatusUnauthorized, views.PageLogin, data)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				data.Notice = noticePtr(internalErrorNotice)
				render(renderer, w, http.StatusInternalServerError, views.PageLogin, data)
			}
			return
		}

		flasher.Write(w, backendNotice(res.Status, res.Msg))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
