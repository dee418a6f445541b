package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/flash"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/views"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.New()
	require.NoError(t, err)
	return r
}

func newRequest(method, target string, form url.Values, sessionID uuid.UUID) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req.WithContext(middlewares.WithSessionID(req.Context(), sessionID))
}

// flashFrom decodes the flash notice set on the response, if any.
func flashFrom(rec *httptest.ResponseRecorder) (models.Notice, bool) {
	for _, c := range rec.Result().Cookies() {
		if c.Name != flash.CookieName || c.Value == "" {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		return flash.New(false).ReadAndClear(httptest.NewRecorder(), req)
	}
	return models.Notice{}, false
}

func withFlash(t *testing.T, req *http.Request, notice models.Notice) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	flash.New(false).Write(rec, notice)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	req.AddCookie(cookies[0])
	return req
}
