package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bikesafe/internal/domain/entity"
	"bikesafe/internal/domain/repository"
	mockRepo "bikesafe/internal/mocks/repository"
	mockService "bikesafe/internal/mocks/service"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	service    usecase.AlertUsecase
	userRepo   *mockRepo.MockUserRepository
	deviceRepo *mockRepo.MockDeviceRepository
	pushSvc    *mockService.MockPushService
}

func createTestAlertService(t *testing.T) *alertServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockService.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &alertServiceFixtures{
		service:    NewAlertService(userRepo, deviceRepo, pushSvc, logger),
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		pushSvc:    pushSvc,
	}
}

func testEvent(userID uuid.UUID, kind entity.AlertKind) *entity.AlertEvent {
	return &entity.AlertEvent{
		UserID:   userID,
		Kind:     kind,
		Message:  "test alert",
		RaisedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestAlertService_Dispatch_SendsToActiveDevices(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-a"},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-b"},
		}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-a", "token-b"}, "Battery Alert", "test alert", mock.AnythingOfType("map[string]string")).
		Return(2, 0, nil, nil)

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindBattery))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_SuppressedByPreferences(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The user only wants battery alerts; a queued temperature alert is
	// dropped without touching the device table.
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID, entity.AlertKindBattery), nil)

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindTemperature))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_NoDevicesIsNoop(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindBattery))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_RemovesInvalidTokens(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-stale"},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-live"},
		}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-stale", "token-live"}, "Safe Zone Alert", "test alert", mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"token-stale"}, nil)
	fx.deviceRepo.EXPECT().DeleteByToken(ctx, userID, "token-stale").Return(nil)

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindSafeZone))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_TokenRemovalIsIdempotent(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-stale"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-stale"}, "Battery Alert", "test alert", mock.AnythingOfType("map[string]string")).
		Return(0, 1, []string{"token-stale"}, nil)

	// A concurrent dispatch already removed the token.
	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, userID, "token-stale").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindBattery))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_PushFailureIsLoggedNotSurfaced(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-a"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-a"}, "Battery Alert", "test alert", mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	err := fx.service.Dispatch(ctx, testEvent(userID, entity.AlertKindBattery))
	require.NoError(t, err)
}

func TestAlertService_Dispatch_DataCarriesKindAndTimestamp(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	event := testEvent(userID, entity.AlertKindBattery)
	event.Data = map[string]string{"battery_level": "5"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID), nil)
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-a"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-a"}, "Battery Alert", "test alert", mock.AnythingOfType("map[string]string")).
		Run(func(_ context.Context, _ []string, _ string, _ string, data map[string]string) {
			assert.Equal(t, "battery", data["kind"])
			assert.Equal(t, "5", data["battery_level"])
			assert.Equal(t, "2025-06-15T12:00:00Z", data["raised_at"])
		}).
		Return(1, 0, nil, nil)

	err := fx.service.Dispatch(ctx, event)
	require.NoError(t, err)
}

func TestAlertService_Send_OptedOut(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testUser(userID, entity.AlertKindSafeZone), nil)

	delivered, err := fx.service.Send(ctx, userID, entity.AlertKindTheft, "bike moved")
	require.NoError(t, err)
	assert.False(t, delivered)
}

func TestAlertService_Send_Delivered(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := testUser(userID, entity.AlertKindTheft)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil).Twice()
	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-a"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-a"}, "Theft Alert", "bike moved", mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	delivered, err := fx.service.Send(ctx, userID, entity.AlertKindTheft, "bike moved")
	require.NoError(t, err)
	assert.True(t, delivered)
}

func TestAlertService_Send_UnknownKind(t *testing.T) {
	fx := createTestAlertService(t)

	delivered, err := fx.service.Send(context.Background(), uuid.New(), "earthquake", "shaking")
	assert.False(t, delivered)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAlertService_UpdatePreferences(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefs := []entity.AlertKind{entity.AlertKindSafeZone, entity.AlertKindTheft}
	fx.userRepo.EXPECT().UpdateAlertPreferences(ctx, userID, prefs).Return(nil)

	updated, err := fx.service.UpdatePreferences(ctx, userID, prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, updated)
}

func TestAlertService_UpdatePreferences_EmptySilencesAll(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateAlertPreferences(ctx, userID, []entity.AlertKind{}).Return(nil)

	updated, err := fx.service.UpdatePreferences(ctx, userID, []entity.AlertKind{})
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestAlertService_UpdatePreferences_UnknownKind(t *testing.T) {
	fx := createTestAlertService(t)

	updated, err := fx.service.UpdatePreferences(context.Background(), uuid.New(), []entity.AlertKind{"earthquake"})
	assert.Nil(t, updated)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}
