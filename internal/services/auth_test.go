package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/sbilibin2017/gw-auth-web/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginResponse(status int, token, name string) *models.BackendResponse {
	data, _ := json.Marshal(models.LoginData{Token: token, Name: name})
	return &models.BackendResponse{Status: status, Msg: "Logged in", Data: data}
}

func TestAuthService_Login(t *testing.T) {
	creds := models.Credentials{Email: "john@example.com", Password: "secret"}
	sessionID := uuid.New()

	tests := []struct {
		name        string
		resp        *models.BackendResponse
		backendErr  error
		expectSave  bool
		saveErr     error
		wantOutcome string
		wantErr     error
		wantResult  *models.LoginResult
	}{
		{
			name:        "successful login",
			resp:        loginResponse(200, "tok", "John"),
			expectSave:  true,
			wantOutcome: models.OutcomeSuccess,
			wantResult:  &models.LoginResult{Status: 200, Msg: "Logged in", Name: "John"},
		},
		{
			name:        "status field other than 200",
			resp:        loginResponse(401, "tok", "John"),
			wantOutcome: models.OutcomeInvalidCredentials,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "backend rejected credentials",
			backendErr:  &models.BackendError{StatusCode: http.StatusUnauthorized},
			wantOutcome: models.OutcomeInvalidCredentials,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "backend server error",
			backendErr:  &models.BackendError{StatusCode: http.StatusBadGateway},
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "transport error",
			backendErr:  errors.New("connection refused"),
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "missing token",
			resp:        loginResponse(200, "", "John"),
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "malformed data",
			resp:        &models.BackendResponse{Status: 200, Data: json.RawMessage(`"nope"`)},
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrLoginFailed,
		},
		{
			name:        "session store error",
			resp:        loginResponse(200, "tok", "John"),
			expectSave:  true,
			saveErr:     errors.New("redis down"),
			wantOutcome: models.OutcomeFailed,
			wantErr:     errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := services.NewMockAuthBackend(ctrl)
			sessions := services.NewMockSessionStore(ctrl)
			events := services.NewMockEventRecorder(ctrl)
			svc := services.NewAuthService(backend, sessions, events)

			backend.EXPECT().EmployeeLogin(gomock.Any(), creds).Return(tt.resp, tt.backendErr)
			if tt.expectSave {
				sessions.EXPECT().Save(gomock.Any(), sessionID, "tok", "John").Return(tt.saveErr)
			}
			events.EXPECT().Record(gomock.Any(), event(models.ActionLogin, tt.wantOutcome))

			res, err := svc.Login(context.Background(), sessionID, creds)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, res)
			case errors.Is(tt.wantErr, services.ErrLoginFailed):
				assert.ErrorIs(t, err, services.ErrLoginFailed)
				assert.Nil(t, res)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.NotErrorIs(t, err, services.ErrLoginFailed)
				assert.Nil(t, res)
			}
		})
	}
}

func TestAuthService_Login_KeepsBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := services.NewMockAuthBackend(ctrl)
	svc := services.NewAuthService(backend, services.NewMockSessionStore(ctrl), nil)

	backendErr := &models.BackendError{StatusCode: http.StatusUnauthorized}
	backend.EXPECT().EmployeeLogin(gomock.Any(), gomock.Any()).Return(nil, backendErr)

	_, err := svc.Login(context.Background(), uuid.New(), models.Credentials{})

	var berr *models.BackendError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, http.StatusUnauthorized, berr.StatusCode)
}

func validationError(data string) *models.BackendError {
	return &models.BackendError{
		StatusCode: http.StatusUnprocessableEntity,
		Response: &models.BackendResponse{
			Status: 422,
			Msg:    services.ValidationErrorsMsg,
			Data:   json.RawMessage(data),
		},
	}
}

func TestAuthService_Signup(t *testing.T) {
	req := models.SignupRequest{
		Name:                 "John",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	tests := []struct {
		name        string
		resp        *models.BackendResponse
		backendErr  error
		wantOutcome string
		wantErr     error
		wantResult  *models.SignupResult
	}{
		{
			name:        "successful signup",
			resp:        &models.BackendResponse{Status: 201, Msg: "User created"},
			wantOutcome: models.OutcomeSuccess,
			wantResult:  &models.SignupResult{Status: 201, Msg: "User created"},
		},
		{
			name:        "email already taken",
			backendErr:  validationError(`["The email has already been taken."]`),
			wantOutcome: models.OutcomeEmailTaken,
			wantErr:     services.ErrEmailAlreadyTaken,
		},
		{
			name:        "other validation error",
			backendErr:  validationError(`["The name must be at least 3 characters."]`),
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrSignupFailed,
		},
		{
			name: "taken message with different status",
			backendErr: &models.BackendError{
				StatusCode: http.StatusBadRequest,
				Response:   &models.BackendResponse{Msg: services.ValidationErrorsMsg, Data: json.RawMessage(`["The email has already been taken."]`)},
			},
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrSignupFailed,
		},
		{
			name: "taken message with different msg",
			backendErr: &models.BackendError{
				StatusCode: http.StatusUnprocessableEntity,
				Response:   &models.BackendResponse{Msg: "Oops", Data: json.RawMessage(`["The email has already been taken."]`)},
			},
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrSignupFailed,
		},
		{
			name:        "transport error",
			backendErr:  errors.New("timeout"),
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrSignupFailed,
		},
		{
			name:        "unexpected status field",
			resp:        &models.BackendResponse{Status: 200, Msg: "ok"},
			wantOutcome: models.OutcomeFailed,
			wantErr:     services.ErrSignupFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := services.NewMockAuthBackend(ctrl)
			events := services.NewMockEventRecorder(ctrl)
			svc := services.NewAuthService(backend, services.NewMockSessionStore(ctrl), events)

			backend.EXPECT().SignupUser(gomock.Any(), req).Return(tt.resp, tt.backendErr)
			events.EXPECT().Record(gomock.Any(), event(models.ActionSignup, tt.wantOutcome))

			res, err := svc.Signup(context.Background(), req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, res)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
			if tt.backendErr != nil {
				assert.ErrorIs(t, err, tt.backendErr)
			}
		})
	}
}

func TestIsEmailTaken(t *testing.T) {
	assert.True(t, services.IsEmailTaken(validationError(`{"email":["The email has already been taken."]}`)))
	assert.True(t, services.IsEmailTaken(validationError(`"The email has already been taken."`)))
	assert.False(t, services.IsEmailTaken(validationError(`[]`)))
	assert.False(t, services.IsEmailTaken(errors.New("The email has already been taken.")))
	assert.False(t, services.IsEmailTaken(&models.BackendError{StatusCode: http.StatusUnprocessableEntity}))
}

func TestAuthService_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(services.NewMockAuthBackend(ctrl), sessions, nil)
	id := uuid.New()

	want := &models.Session{ID: id, Token: "tok", Name: "John"}
	sessions.EXPECT().Get(gomock.Any(), id).Return(want, nil)
	got, err := svc.Session(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	sessions.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("redis down"))
	got, err = svc.Session(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := services.NewMockSessionStore(ctrl)
	events := services.NewMockEventRecorder(ctrl)
	svc := services.NewAuthService(services.NewMockAuthBackend(ctrl), sessions, events)
	id := uuid.New()

	sessions.EXPECT().Delete(gomock.Any(), id).Return(nil)
	events.EXPECT().Record(gomock.Any(), event(models.ActionLogout, models.OutcomeSuccess))
	assert.NoError(t, svc.Logout(context.Background(), id))

	sessions.EXPECT().Delete(gomock.Any(), id).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), id), "redis down")
}
