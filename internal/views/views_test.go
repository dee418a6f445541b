package views

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-auth-web/internal/forms"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Login(t *testing.T) {
	r := MustNew()
	notice := models.NewNotice(models.NoticeError, "Invalid Form", "Email and Password", 2*time.Second)

	rec := httptest.NewRecorder()
	err := r.Render(rec, http.StatusUnprocessableEntity, PageLogin, PageData{
		Title:  "Login",
		Notice: &notice,
		Values: map[string]string{"email": "<john>"},
		Errors: forms.Errors{"email": "Enter a valid email address"},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `toast-error`)
	assert.Contains(t, body, `data-timeout="2000"`)
	assert.Contains(t, body, "Email and Password")
	assert.Contains(t, body, `value="&lt;john&gt;"`)
	assert.Contains(t, body, `data-field="email"`)
	assert.NotContains(t, body, `data-field="password"`)
}

func TestRender_SignupMismatch(t *testing.T) {
	r := MustNew()

	rec := httptest.NewRecorder()
	err := r.Render(rec, http.StatusUnprocessableEntity, PageSignup, PageData{
		Title:  "Signup",
		Errors: forms.Errors{forms.PasswordMismatch: "Passwords do not match"},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `data-error="passwordMismatch"`)
	assert.NotContains(t, rec.Body.String(), "toast")
}

func TestRender_Home(t *testing.T) {
	r := MustNew()

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, PageHome, PageData{Title: "Home", Name: "John"}))
	assert.Contains(t, rec.Body.String(), "Welcome, John")
}

func TestRender_UnknownPage(t *testing.T) {
	r := MustNew()
	rec := httptest.NewRecorder()
	assert.Error(t, r.Render(rec, http.StatusOK, "nope", PageData{}))
	assert.Equal(t, 0, rec.Body.Len())
}
