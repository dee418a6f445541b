package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// SessionRepository keeps the per-browser token and display name in a Redis hash.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the whole session record, 0 keeps it forever
}

// NewSessionRepository creates a new repository instance with optional TTL
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save writes token and name for the session. Concurrent saves are last-write-wins.
func (r *SessionRepository) Save(ctx context.Context, sessionID uuid.UUID, token, name string) error {
	key := sessionKey(sessionID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, models.SessionTokenField, token, models.SessionNameField, name)
		if r.exp > 0 {
			pipe.Expire(ctx, key, r.exp)
		}
		return nil
	})

	logger.Log.Infow("session saved",
		"key", key,
		"name", name,
		"result", "saved",
		"error", err,
	)

	return err
}

// Get returns the session, or nil when nothing was stored for it.
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	key := sessionKey(sessionID)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("failed to read session", "key", key, "error", err)
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return &models.Session{
		ID:    sessionID,
		Token: fields[models.SessionTokenField],
		Name:  fields[models.SessionNameField],
	}, nil
}

// Delete removes the session record.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session deleted",
		"key", key,
		"error", err,
	)

	return err
}
