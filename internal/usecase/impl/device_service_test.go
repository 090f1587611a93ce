package impl

import (
	"context"
	"testing"

	"bikesafe/internal/domain/entity"
	"bikesafe/internal/domain/repository"
	mockRepo "bikesafe/internal/mocks/repository"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(deviceRepo), deviceRepo
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)
	deviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-a",
		DeviceID: "phone-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "token-a", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesTokenByDeviceID(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()

	existing := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		FCMToken: "token-old",
		DeviceID: "phone-1",
	}

	deviceRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	deviceRepo.EXPECT().UpdateFCMToken(ctx, existingID, "token-new").Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-new",
		DeviceID: "phone-1",
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "token-new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_SameTokenIsIdempotent(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "token-a",
		DeviceID: "phone-1",
	}

	deviceRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "token-a"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
}

func TestDeviceService_RegisterDevice_DuplicateCreateTolerated(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)
	deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrDuplicateDevice)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "token-a"})
	require.NoError(t, err)
	assert.Equal(t, "token-a", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	service, _ := createTestDeviceService(t)

	device, err := service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{})
	assert.Nil(t, device)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_RemoveDevice_MissingIsNoop(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		DeleteByToken(ctx, userID, "token-gone").
		Return(repository.ErrDeviceNotFound)

	err := service.RemoveDevice(ctx, userID, "token-gone")
	require.NoError(t, err)
}

func TestDeviceService_ListDevices(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-a"},
	}
	deviceRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	devices, err := service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}
