package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
	"github.com/segmentio/kafka-go"
)

// AuthEventWriter persists audit events.
type AuthEventWriter interface {
	Save(ctx context.Context, event models.AuthEvent) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthEventRecorder fans an auth event out to the audit table and the event
// stream. Either sink may be nil. Failures are logged and never returned.
type AuthEventRecorder struct {
	writer      AuthEventWriter
	kafkaWriter KafkaWriter
}

// NewAuthEventRecorder creates a new AuthEventRecorder.
func NewAuthEventRecorder(writer AuthEventWriter, kafkaWriter KafkaWriter) *AuthEventRecorder {
	return &AuthEventRecorder{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Record stores and publishes the event.
func (r *AuthEventRecorder) Record(ctx context.Context, event models.AuthEvent) {
	if r == nil {
		return
	}

	if r.writer != nil {
		if err := r.writer.Save(ctx, event); err != nil {
			logger.Log.Errorw("Failed to save auth event", "event_id", event.EventID, "error", err)
		}
	}

	r.publish(ctx, event)
}

func (r *AuthEventRecorder) publish(ctx context.Context, event models.AuthEvent) {
	if r.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal auth event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: data,
	}

	if err := r.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish auth event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Auth event published to Kafka", "event_id", event.EventID, "action", event.Action, "outcome", event.Outcome)
	}
}
