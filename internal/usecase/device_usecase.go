package usecase

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo describes a push endpoint being registered.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase owns device-token bookkeeping.
type DeviceUsecase interface {
	// RegisterDevice creates the device or refreshes the token on an
	// existing one with the same client device ID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// RemoveDevice removes the endpoint holding the token. Removing an
	// absent endpoint is a no-op.
	RemoveDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// ListDevices returns all devices registered by the user.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
}
