package services

import (
	"context"

	"fintrack/internal/amqp"
	applog "fintrack/internal/log"
)

// EventPublisher announces ledger changes. *amqp.Client implements it.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event *amqp.LedgerEvent) error
}

// eventSink publishes best effort: the local write already succeeded, so a
// failed publication is logged and swallowed.
type eventSink struct {
	publisher EventPublisher
	logger    *applog.Logger
}

func (s eventSink) publish(ctx context.Context, op string, id, affected int64) {
	if s.publisher == nil || affected == 0 {
		return
	}
	if err := s.publisher.PublishLedgerEvent(ctx, amqp.NewLedgerEvent(op, id, affected)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish ledger event",
			applog.FieldOperation, op,
			applog.FieldID, id,
			applog.FieldError, err)
	}
}
