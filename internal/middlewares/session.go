package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// SessionTokener signs and reads the session cookie.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error)
	Generate(ctx context.Context, sessionID uuid.UUID) (string, error)
}

// SessionReader loads the stored session.
type SessionReader interface {
	Session(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
}

// SessionCookie describes how the session cookie is written.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type sessionIDKey struct{}

// WithSessionID stores the session id in the context.
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the session id, or uuid.Nil outside SessionMiddleware.
func SessionIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(sessionIDKey{}).(uuid.UUID)
	return id
}

// SessionMiddleware resolves the browser session id from the signed cookie.
// A missing, expired or forged cookie is replaced by a new session.
func SessionMiddleware(tokener SessionTokener, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID := uuid.Nil
			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				if id, err := tokener.GetSessionID(ctx, tokenString); err == nil {
					sessionID = id
				} else {
					logger.Log.Infow("discarding session cookie", "err", err)
				}
			}

			if sessionID == uuid.Nil {
				sessionID = uuid.New()
				tokenString, err := tokener.Generate(ctx, sessionID)
				if err != nil {
					logger.Log.Errorw("failed to sign session cookie", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookie.Name,
					Value:    tokenString,
					Path:     "/",
					MaxAge:   int(cookie.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cookie.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(ctx, sessionID)))
		})
	}
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, cookie SessionCookie) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GuestOnlyMiddleware redirects browsers that already hold a token to the root route.
func GuestOnlyMiddleware(reader SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session, err := reader.Session(ctx, SessionIDFromContext(ctx))
			if err != nil {
				logger.Log.Errorw("failed to check session, treating as guest", "err", err)
			}
			if session.Authenticated() {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
