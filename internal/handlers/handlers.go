// Package handlers serves the login, signup and home pages.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
)

// Renderer writes an HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data views.PageData) error
}

// Flasher carries a notice across a redirect.
type Flasher interface {
	Write(w http.ResponseWriter, notice models.Notice)
	ReadAndClear(w http.ResponseWriter, r *http.Request) (models.Notice, bool)
}

const (
	shortNotice = 2 * time.Second
	longNotice  = 5 * time.Second
)

var (
	invalidLoginFormNotice = models.NewNotice(models.NoticeError, "Invalid Form", "Email and Password", shortNotice)
	credentialsNotice      = models.NewNotice(models.NoticeError, "401", "Error with your credentials", longNotice)
	emailTakenNotice       = models.NewNotice(models.NoticeError, "Error", "The email has already been taken.", shortNotice)
	signupErrorNotice      = models.NewNotice(models.NoticeError, "Error", "An error occurred while signing up.", shortNotice)
	invalidStateNotice     = models.NewNotice(models.NoticeError, "Error", "Invalid OAuth state", shortNotice)
	internalErrorNotice    = models.NewNotice(models.NoticeError, "Error", "Something went wrong, please try again.", shortNotice)
	logoutNotice           = models.NewNotice(models.NoticeSuccess, "Logout", "You have been logged out", shortNotice)
)

// backendNotice shows the backend's status and message JSON encoded, as the
// browser client always did.
func backendNotice(status int, msg string) models.Notice {
	return models.NewNotice(models.NoticeSuccess, jsonText(status), jsonText(msg), shortNotice)
}

func jsonText(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// pendingNotice returns the flash notice left by the previous request.
func pendingNotice(flasher Flasher, w http.ResponseWriter, r *http.Request) *models.Notice {
	notice, ok := flasher.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return &notice
}

func render(renderer Renderer, w http.ResponseWriter, status int, page string, data views.PageData) {
	if err := renderer.Render(w, status, page, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func noticePtr(n models.Notice) *models.Notice {
	return &n
}
