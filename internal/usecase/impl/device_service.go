package impl

import (
	"context"
	"errors"
	"time"

	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a push endpoint, or refreshes the token on an
// existing device with the same client device ID.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if info.FCMToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	devices, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load devices")
	}

	for _, device := range devices {
		if info.DeviceID != "" && device.DeviceID == info.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update FCM token")
			}
			device.FCMToken = info.FCMToken
			device.UpdatedAt = time.Now()

			return device, nil
		}
		// Same token registered again is a refresh, not a conflict.
		if device.FCMToken == info.FCMToken {
			return device, nil
		}
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return device, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return device, nil
}

// RemoveDevice removes the endpoint holding the token. Removing an endpoint
// that is already gone is a no-op, so dispatch self-healing and an explicit
// client logout can race safely.
func (s *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	err := s.deviceRepo.DeleteByToken(ctx, userID, fcmToken)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove device")
	}

	return nil
}

// ListDevices returns all devices registered by the user.
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load devices")
	}

	return devices, nil
}
