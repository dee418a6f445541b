package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/flash"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)
	handler := NewSignupHandler(mockSvc, flash.New(false), newRenderer(t))

	req := models.SignupRequest{
		Name:                 "John Doe",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}
	valid := url.Values{
		"name":                  {req.Name},
		"email":                 {req.Email},
		"password":              {req.Password},
		"password_confirmation": {req.PasswordConfirmation},
	}
	with := func(field, value string) url.Values {
		form := url.Values{}
		for k, v := range valid {
			form[k] = v
		}
		form.Set(field, value)
		return form
	}
	emailTaken := &models.BackendError{
		StatusCode: http.StatusUnprocessableEntity,
		Response: &models.BackendResponse{
			Status: 422,
			Msg:    "Validation Errors",
			Data:   []byte(`{"email":["The email has already been taken."]}`),
		},
	}

	tests := []struct {
		name             string
		form             url.Values
		mockSetup        func()
		expectedCode     int
		expectedLocation string
		expectedBody     []string
		expectedFlash    *models.Notice
	}{
		{
			name: "success",
			form: valid,
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), req).
					Return(&models.SignupResult{Status: 201, Msg: "User created"}, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
			expectedFlash: &models.Notice{
				Kind:      models.NoticeSuccess,
				Title:     "201",
				Message:   `"User created"`,
				TimeoutMS: 2000,
			},
		},
		{
			name:         "password mismatch",
			form:         with("password_confirmation", "secret124"),
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: []string{`data-error="passwordMismatch"`, `value="John Doe"`},
		},
		{
			name:         "short name",
			form:         with("name", "Jo"),
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: []string{`data-field="name"`, "Must be at least 3 characters"},
		},
		{
			name:         "short password",
			form:         url.Values{"name": {"John"}, "email": {"john@example.com"}, "password": {"short"}, "password_confirmation": {"short"}},
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: []string{`data-field="password"`, "Must be at least 8 characters"},
		},
		{
			name:         "malformed email",
			form:         with("email", "john"),
			mockSetup:    func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: []string{`data-field="email"`},
		},
		{
			name: "email already taken",
			form: valid,
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), req).
					Return(nil, fmt.Errorf("%w: %w", services.ErrEmailAlreadyTaken, emailTaken))
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: []string{"The email has already been taken.", `value="john@example.com"`},
		},
		{
			name: "backend failure",
			form: valid,
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), req).
					Return(nil, fmt.Errorf("%w: backend status 200", services.ErrSignupFailed))
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: []string{"An error occurred while signing up."},
		},
		{
			name: "unexpected error",
			form: valid,
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), req).
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: []string{"An error occurred while signing up."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequest(http.MethodPost, "/signup", tt.form, uuid.New()))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			for _, s := range tt.expectedBody {
				assert.Contains(t, rec.Body.String(), s)
			}

			notice, ok := flashFrom(rec)
			if tt.expectedFlash == nil {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, *tt.expectedFlash, notice)
		})
	}
}

func TestSignupPageHandler(t *testing.T) {
	handler := NewSignupPageHandler(flash.New(false), newRenderer(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(http.MethodGet, "/signup", nil, uuid.New()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/signup"`)
	assert.Contains(t, rec.Body.String(), `name="password_confirmation"`)
}
