package service

import (
	"context"
)

// AlertMessage is the wire payload handed to the alert worker. A raised
// AlertEvent is flattened here so the worker needs no domain lookup to
// deserialize it.
type AlertMessage struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing.
	UserID    string            `json:"user_id"`
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	RaisedAt  string            `json:"raised_at"` // RFC 3339.
}

// AlertPublisher hands raised alerts to the async delivery path. Publishing
// is best effort: the ingest response never waits on delivery.
type AlertPublisher interface {
	// PublishAlert enqueues one alert for the worker.
	PublishAlert(ctx context.Context, msg *AlertMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
