package services

//go:generate mockgen -source=oauth.go -destination=oauth_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// stateBytes is the entropy of an OAuth state value.
const stateBytes = 16

var (
	ErrInvalidOAuthState = errors.New("invalid oauth state")
	ErrMissingOAuthToken = errors.New("missing oauth token")
)

// OAuthStateStore keeps issued OAuth states until they are used once.
type OAuthStateStore interface {
	Save(ctx context.Context, state string, sessionID uuid.UUID) error
	Consume(ctx context.Context, state string) (uuid.UUID, error)
}

// SessionWriter stores token and name for a session.
type SessionWriter interface {
	Save(ctx context.Context, sessionID uuid.UUID, token, name string) error
}

// OAuthService runs the external Google login redirect and its callback.
type OAuthService struct {
	states       OAuthStateStore
	sessions     SessionWriter
	events       EventRecorder
	authURL      string
	requireState bool
}

// NewOAuthService creates an OAuthService redirecting to authURL. With
// requireState the callback must present a state issued to the same session.
func NewOAuthService(states OAuthStateStore, sessions SessionWriter, events EventRecorder, authURL string, requireState bool) *OAuthService {
	return &OAuthService{
		states:       states,
		sessions:     sessions,
		events:       events,
		authURL:      authURL,
		requireState: requireState,
	}
}

// Begin issues a state bound to the session and returns the authorization URL.
func (svc *OAuthService) Begin(ctx context.Context, sessionID uuid.UUID) (string, error) {
	u, err := url.Parse(svc.authURL)
	if err != nil {
		return "", fmt.Errorf("parse oauth url: %w", err)
	}

	state, err := generateState()
	if err != nil {
		logger.Log.Errorw("failed to generate oauth state", "err", err)
		return "", err
	}
	if err := svc.states.Save(ctx, state, sessionID); err != nil {
		logger.Log.Errorw("failed to store oauth state", "session_id", sessionID, "err", err)
		return "", err
	}

	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Complete stores the token and name handed back by the OAuth redirect.
func (svc *OAuthService) Complete(ctx context.Context, sessionID uuid.UUID, state, token, name string) error {
	if token == "" {
		return ErrMissingOAuthToken
	}

	if svc.requireState {
		if state == "" {
			logger.Log.Errorw("oauth callback without state", "session_id", sessionID)
			svc.record(ctx, models.OutcomeInvalidState)
			return ErrInvalidOAuthState
		}
		owner, err := svc.states.Consume(ctx, state)
		if err != nil {
			return err
		}
		if owner == uuid.Nil || owner != sessionID {
			logger.Log.Errorw("oauth state mismatch", "session_id", sessionID, "owner", owner)
			svc.record(ctx, models.OutcomeInvalidState)
			return ErrInvalidOAuthState
		}
	}

	if err := svc.sessions.Save(ctx, sessionID, token, name); err != nil {
		logger.Log.Errorw("failed to store oauth session", "session_id", sessionID, "err", err)
		svc.record(ctx, models.OutcomeFailed)
		return err
	}

	svc.record(ctx, models.OutcomeSuccess)
	return nil
}

func (svc *OAuthService) record(ctx context.Context, outcome string) {
	if svc.events == nil {
		return
	}
	svc.events.Record(ctx, models.NewAuthEvent(models.ActionOAuthLogin, "", outcome))
}

func generateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
