package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
)

// OAuthStateRepository binds single-use OAuth state values to the session that
// started the flow.
type OAuthStateRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewOAuthStateRepository creates a repository whose states expire after expiration.
func NewOAuthStateRepository(client *redis.Client, expiration time.Duration) *OAuthStateRepository {
	return &OAuthStateRepository{client: client, exp: expiration}
}

func stateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}

// Save stores the state for the session.
func (r *OAuthStateRepository) Save(ctx context.Context, state string, sessionID uuid.UUID) error {
	key := stateKey(state)
	err := r.client.Set(ctx, key, sessionID.String(), r.exp).Err()

	logger.Log.Infow("oauth state saved",
		"key", key,
		"session_id", sessionID,
		"error", err,
	)

	return err
}

// Consume deletes the state and returns the session it was issued to.
// An unknown or expired state yields uuid.Nil and no error.
func (r *OAuthStateRepository) Consume(ctx context.Context, state string) (uuid.UUID, error) {
	key := stateKey(state)

	val, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Infow("oauth state not found", "key", key)
			return uuid.Nil, nil
		}
		logger.Log.Errorw("failed to consume oauth state", "key", key, "error", err)
		return uuid.Nil, err
	}

	sessionID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt oauth state %s: %w", key, err)
	}

	logger.Log.Infow("oauth state consumed",
		"key", key,
		"session_id", sessionID,
	)

	return sessionID, nil
}
