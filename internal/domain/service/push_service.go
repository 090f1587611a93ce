// Package service defines domain-level collaborator interfaces implemented
// by the infrastructure layer.
package service

import (
	"context"
)

// PushService is the push-delivery channel. Implementations report tokens
// the channel considers permanently invalid so callers can self-heal.
type PushService interface {
	// SendBatch sends a notification to multiple device tokens (max 500 per
	// call). Returns success count, failure count and the invalid tokens.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingle sends a notification to one device token.
	SendSingle(ctx context.Context, token, title, body string, data map[string]string) error
}
