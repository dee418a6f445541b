package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

const authEventsSchema = `
	CREATE TABLE IF NOT EXISTS auth_events (
		event_id UUID PRIMARY KEY,
		action VARCHAR(32) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		outcome VARCHAR(32) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)
`

// AuthEventWriteRepository appends authentication attempts to the audit table.
type AuthEventWriteRepository struct {
	db *sqlx.DB
}

func NewAuthEventWriteRepository(db *sqlx.DB) *AuthEventWriteRepository {
	return &AuthEventWriteRepository{db: db}
}

// EnsureSchema creates the audit table when it does not exist.
func (r *AuthEventWriteRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, authEventsSchema)

	logger.Log.Infow("schema ensured",
		"query", strings.Join(strings.Fields(authEventsSchema), " "),
		"error", err,
	)

	return err
}

func (r *AuthEventWriteRepository) Save(ctx context.Context, event models.AuthEvent) error {
	const query = `
		INSERT INTO auth_events (event_id, action, email, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{event.EventID, event.Action, event.Email, event.Outcome, event.CreatedAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
