package handlers

//go:generate mockgen -source=login_google.go -destination=login_google_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
)

// OAuthStarter issues the state for an external login.
type OAuthStarter interface {
	Begin(ctx context.Context, sessionID uuid.UUID) (string, error)
}

// NewGoogleLoginHandler returns an HTTP handler redirecting to the Google login.
// @Summary Google login
// @Description Issue an OAuth state for the session and redirect to the external login
// @Tags auth
// @Produce html
// @Success 302 {string} string "Redirect to the OAuth provider"
// @Failure 500 {string} string "Internal server error"
// @Router /login/google [get]
func NewGoogleLoginHandler(svc OAuthStarter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authURL, err := svc.Begin(ctx, middlewares.SessionIDFromContext(ctx))
		if err != nil {
			logger.Log.Errorw("failed to start oauth login", "err", err)
			render(renderer, w, http.StatusInternalServerError, views.PageLogin, views.PageData{
				Title:  "Login",
				Notice: noticePtr(internalErrorNotice),
			})
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}
