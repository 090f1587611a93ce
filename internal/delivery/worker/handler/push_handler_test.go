package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/service"
	mockUsecase "bikesafe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAlertUsecase) {
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  logger,
		AlertUC: alertUC,
	})

	return handler, alertUC
}

func pushRequest(t *testing.T, alert *service.AlertMessage) *http.Request {
	t.Helper()

	payload, err := json.Marshal(alert)
	require.NoError(t, err)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Subscription = "projects/test/subscriptions/alerts"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_Dispatches(t *testing.T) {
	handler, alertUC := createTestPushHandler(t)
	userID := uuid.New()

	alertUC.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*entity.AlertEvent")).
		Run(func(_ context.Context, event *entity.AlertEvent) {
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, entity.AlertKindBattery, event.Kind)
		}).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlertMessage{
		UserID:   userID.String(),
		Kind:     "battery",
		Message:  "Battery is critically low: 5%",
		RaisedAt: "2025-06-15T12:00:00Z",
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailureReturns503(t *testing.T) {
	handler, alertUC := createTestPushHandler(t)

	alertUC.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*entity.AlertEvent")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to load devices"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlertMessage{
		UserID:   uuid.NewString(),
		Kind:     "battery",
		Message:  "Battery is critically low: 5%",
		RaisedAt: "2025-06-15T12:00:00Z",
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_PermanentFailureReturns200(t *testing.T) {
	handler, alertUC := createTestPushHandler(t)

	// A missing user never becomes deliverable; acking stops the loop.
	alertUC.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*entity.AlertEvent")).
		Return(domainerrors.ErrUserNotFound)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlertMessage{
		UserID:   uuid.NewString(),
		Kind:     "battery",
		Message:  "Battery is critically low: 5%",
		RaisedAt: "2025-06-15T12:00:00Z",
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_UnknownKindNeverDispatches(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlertMessage{
		UserID:   uuid.NewString(),
		Kind:     "earthquake",
		Message:  "shaking",
		RaisedAt: "2025-06-15T12:00:00Z",
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_PrefersAttributes(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	alert := &service.AlertMessage{RequestID: "req-field"}

	id := handler.extractRequestID(context.Background(), &pushMsg, alert)
	assert.Equal(t, "req-attr", id)

	pushMsg.Message.Attributes = nil
	id = handler.extractRequestID(context.Background(), &pushMsg, alert)
	assert.Equal(t, "req-field", id)
}
