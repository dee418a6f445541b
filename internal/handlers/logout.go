package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
)

// Logouter forgets the session token.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler ending the session.
// @Summary Logout
// @Description Delete the session record and clear the session cookie
// @Tags auth
// @Produce html
// @Success 303 {string} string "Redirect to /login"
// @Failure 500 {string} string "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, flasher Flasher, cookie middlewares.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := svc.Logout(ctx, middlewares.SessionIDFromContext(ctx)); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		middlewares.ClearSessionCookie(w, cookie)
		flasher.Write(w, logoutNotice)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
