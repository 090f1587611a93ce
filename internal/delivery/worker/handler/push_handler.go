// Package handler processes Pub/Sub push deliveries for the alert worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bikesafe/config"
	deliverycontext "bikesafe/internal/delivery/context"
	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/service"
	"bikesafe/internal/infra/pubsub"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying raised alerts
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	alertUC        usecase.AlertUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only verify push auth for a real Google subscription outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != "develop"

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		alertUC:        params.AlertUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Delivery runs with
// at-least-once semantics: transient failures return 503 so Pub/Sub
// redelivers, permanent ones return 200 so they never loop.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse alert message
	var alert service.AlertMessage
	if err := json.Unmarshal(data, &alert); err != nil {
		h.logger.Error("[Worker] Failed to parse alert message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &alert)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert",
		slog.String("user_id", alert.UserID),
		slog.String("kind", alert.Kind),
	)

	if err := h.processAlert(ctx, &alert); err != nil {
		reqLogger.Error("[Worker] Failed to process alert",
			slog.String("user_id", alert.UserID),
			slog.String("kind", alert.Kind),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert processed successfully",
		slog.String("user_id", alert.UserID),
		slog.String("kind", alert.Kind),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, the alert, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, alert *service.AlertMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try alert field (from JSON payload)
	if alert.RequestID != "" {
		return alert.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processAlert rebuilds the domain event from the wire payload and hands it
// to the dispatcher. Malformed payloads and missing users are permanent;
// storage failures are worth a redelivery.
func (h *PushHandler) processAlert(ctx context.Context, alert *service.AlertMessage) error {
	userID, err := uuid.Parse(alert.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user ID in alert")
	}

	kind := entity.AlertKind(alert.Kind)
	if !entity.ValidAlertKind(kind) {
		return errors.Errorf("unknown alert kind: %s", alert.Kind)
	}

	raisedAt, err := time.Parse(time.RFC3339, alert.RaisedAt)
	if err != nil {
		raisedAt = time.Now()
	}

	event := &entity.AlertEvent{
		UserID:   userID,
		Kind:     kind,
		Message:  alert.Message,
		Data:     alert.Data,
		RaisedAt: raisedAt,
	}

	if err := h.alertUC.Dispatch(ctx, event); err != nil {
		var dbErr *domainerrors.DatabaseExecuteError
		if errors.As(err, &dbErr) {
			return newRetryableError(err)
		}

		return err
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
