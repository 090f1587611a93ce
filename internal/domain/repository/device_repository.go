package repository

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push-endpoint persistence.
type DeviceRepository interface {
	// Create persists a new device for a user.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all devices for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveByUser retrieves the user's devices eligible for delivery.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the push token on an existing device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteByToken removes the device holding the given push token for the
	// user. Returns ErrDeviceNotFound when no such device exists; callers
	// that need idempotent removal treat that as success.
	DeleteByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
