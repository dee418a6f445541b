// Package flash carries one notice across a redirect in a short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// CookieName is the cookie used for one-time notices.
const CookieName = "gw_flash"

// Writer stores and reads flash notices. Secure marks the cookie HTTPS only.
type Writer struct {
	Secure bool
}

// New creates a flash Writer.
func New(secure bool) *Writer {
	return &Writer{Secure: secure}
}

// Write stores the notice for the next page render.
func (f *Writer) Write(w http.ResponseWriter, notice models.Notice) {
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   f.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func (f *Writer) ReadAndClear(w http.ResponseWriter, r *http.Request) (models.Notice, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.Notice{}, false
	}
	f.Clear(w)
	return decode(cookie.Value)
}

// Clear expires the flash cookie.
func (f *Writer) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   f.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decode(raw string) (models.Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return models.Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return models.Notice{}, false
	}
	var notice models.Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return models.Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice models.Notice) (models.Notice, bool) {
	notice.Message = strings.TrimSpace(notice.Message)
	notice.Title = strings.TrimSpace(notice.Title)
	if notice.Message == "" && notice.Title == "" {
		return models.Notice{}, false
	}
	notice.Kind = models.NoticeKind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case models.NoticeSuccess, models.NoticeInfo, models.NoticeWarning, models.NoticeError:
		return notice, true
	default:
		return models.Notice{}, false
	}
}
