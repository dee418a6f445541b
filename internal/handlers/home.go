package handlers

//go:generate mockgen -source=home.go -destination=home_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
)

// SessionReader loads the stored session.
type SessionReader interface {
	Session(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
}

// NewHomeHandler returns an HTTP handler greeting the logged in user.
// @Summary Home page
// @Description Greet the user stored in the session; guests are sent to /login
// @Tags home
// @Produce html
// @Success 200 {string} string "Home page"
// @Success 303 {string} string "Redirect to /login"
// @Failure 500 {string} string "Internal server error"
// @Router / [get]
// @Router /home [get]
func NewHomeHandler(reader SessionReader, flasher Flasher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session, err := reader.Session(ctx, middlewares.SessionIDFromContext(ctx))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !session.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		render(renderer, w, http.StatusOK, views.PageHome, views.PageData{
			Title:  "Home",
			Name:   session.Name,
			Notice: pendingNotice(flasher, w, r),
		})
	}
}
