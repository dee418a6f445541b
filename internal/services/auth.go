package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// Backend messages the signup flow matches on.
const (
	ValidationErrorsMsg = "Validation Errors"
	EmailTakenMsg       = "The email has already been taken."
)

// Error variables
var (
	ErrLoginFailed       = errors.New("login failed")
	ErrEmailAlreadyTaken = errors.New("email already taken")
	ErrSignupFailed      = errors.New("signup failed")
)

// AuthBackend is the remote service owning users and tokens.
type AuthBackend interface {
	EmployeeLogin(ctx context.Context, creds models.Credentials) (*models.BackendResponse, error)
	SignupUser(ctx context.Context, req models.SignupRequest) (*models.BackendResponse, error)
}

// SessionStore keeps the token and name of a browser session.
type SessionStore interface {
	Save(ctx context.Context, sessionID uuid.UUID, token, name string) error
	Get(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// EventRecorder receives an event for every authentication attempt.
type EventRecorder interface {
	Record(ctx context.Context, event models.AuthEvent)
}

// AuthService handles login, signup and logout against the backend.
type AuthService struct {
	backend  AuthBackend
	sessions SessionStore
	events   EventRecorder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(backend AuthBackend, sessions SessionStore, events EventRecorder) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		events:   events,
	}
}

// Login sends the credentials to the backend. Only a response whose status
// field is 200 is accepted; its token and name are then stored in the session.
// Every other outcome wraps ErrLoginFailed and leaves the session untouched.
func (svc *AuthService) Login(ctx context.Context, sessionID uuid.UUID, creds models.Credentials) (*models.LoginResult, error) {
	resp, err := svc.backend.EmployeeLogin(ctx, creds)
	if err != nil {
		logger.Log.Errorw("employee login request failed", "email", creds.Email, "err", err)
		svc.record(ctx, models.ActionLogin, creds.Email, loginFailureOutcome(err))
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if resp.Status != http.StatusOK {
		logger.Log.Errorw("employee login rejected", "email", creds.Email, "status", resp.Status)
		svc.record(ctx, models.ActionLogin, creds.Email, models.OutcomeInvalidCredentials)
		return nil, fmt.Errorf("%w: backend status %d", ErrLoginFailed, resp.Status)
	}

	var data models.LoginData
	if err := resp.DecodeData(&data); err != nil {
		logger.Log.Errorw("malformed login data", "email", creds.Email, "err", err)
		svc.record(ctx, models.ActionLogin, creds.Email, models.OutcomeFailed)
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if data.Token == "" {
		logger.Log.Errorw("login data without token", "email", creds.Email)
		svc.record(ctx, models.ActionLogin, creds.Email, models.OutcomeFailed)
		return nil, fmt.Errorf("%w: empty token", ErrLoginFailed)
	}

	if err := svc.sessions.Save(ctx, sessionID, data.Token, data.Name); err != nil {
		logger.Log.Errorw("failed to store session", "session_id", sessionID, "err", err)
		svc.record(ctx, models.ActionLogin, creds.Email, models.OutcomeFailed)
		return nil, err
	}

	svc.record(ctx, models.ActionLogin, creds.Email, models.OutcomeSuccess)
	return &models.LoginResult{Status: resp.Status, Msg: resp.Msg, Name: data.Name}, nil
}

func loginFailureOutcome(err error) string {
	var berr *models.BackendError
	if errors.As(err, &berr) && berr.StatusCode < http.StatusInternalServerError {
		return models.OutcomeInvalidCredentials
	}
	return models.OutcomeFailed
}

// Signup registers the user with the backend. A 422 "Validation Errors"
// response mentioning the taken email wraps ErrEmailAlreadyTaken, any other
// failure wraps ErrSignupFailed. The backend error stays in the chain.
func (svc *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResult, error) {
	resp, err := svc.backend.SignupUser(ctx, req)
	if err != nil {
		if IsEmailTaken(err) {
			logger.Log.Infow("signup rejected, email taken", "email", req.Email)
			svc.record(ctx, models.ActionSignup, req.Email, models.OutcomeEmailTaken)
			return nil, fmt.Errorf("%w: %w", ErrEmailAlreadyTaken, err)
		}
		logger.Log.Errorw("signup request failed", "email", req.Email, "err", err)
		svc.record(ctx, models.ActionSignup, req.Email, models.OutcomeFailed)
		return nil, fmt.Errorf("%w: %w", ErrSignupFailed, err)
	}
	if resp.Status != http.StatusCreated {
		logger.Log.Errorw("unexpected signup status", "email", req.Email, "status", resp.Status)
		svc.record(ctx, models.ActionSignup, req.Email, models.OutcomeFailed)
		return nil, fmt.Errorf("%w: backend status %d", ErrSignupFailed, resp.Status)
	}

	svc.record(ctx, models.ActionSignup, req.Email, models.OutcomeSuccess)
	return &models.SignupResult{Status: resp.Status, Msg: resp.Msg}, nil
}

// IsEmailTaken reports whether err is the backend's duplicate email rejection.
func IsEmailTaken(err error) bool {
	var berr *models.BackendError
	if !errors.As(err, &berr) {
		return false
	}
	return berr.StatusCode == http.StatusUnprocessableEntity &&
		berr.Msg() == ValidationErrorsMsg &&
		berr.DataContains(EmailTakenMsg)
}

// Session returns the stored session, or nil when the browser has none.
func (svc *AuthService) Session(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	session, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load session", "session_id", sessionID, "err", err)
		return nil, err
	}
	return session, nil
}

// Logout forgets the token and name of the session.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "err", err)
		return err
	}
	svc.record(ctx, models.ActionLogout, "", models.OutcomeSuccess)
	return nil
}

func (svc *AuthService) record(ctx context.Context, action, email, outcome string) {
	if svc.events == nil {
		return
	}
	svc.events.Record(ctx, models.NewAuthEvent(action, email, outcome))
}
