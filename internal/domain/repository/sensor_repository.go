// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for sensor persistence.
var (
	// ErrSensorNotFound is returned when a sensor is not found.
	ErrSensorNotFound = errors.New("sensor not found")
	// ErrDuplicateSensor is returned when creating a sensor whose sensorId is taken.
	ErrDuplicateSensor = errors.New("sensor already exists")
	// ErrSensorOwnershipViolation is returned when a write references a sensor
	// bound to a different user. First-writer binding is permanent.
	ErrSensorOwnershipViolation = errors.New("sensor is bound to another user")
)

// SensorRepository defines the interface for sensor-state persistence.
type SensorRepository interface {
	// Create persists a new sensor record. The write binds the sensorId to
	// the owning user permanently.
	Create(ctx context.Context, sensor *entity.Sensor) error

	// FindBySensorID retrieves a sensor by its hardware identifier.
	FindBySensorID(ctx context.Context, sensorID string) (*entity.Sensor, error)

	// FindByUser retrieves all sensors bound to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sensor, error)

	// Update persists the sensor's current values and timestamps.
	Update(ctx context.Context, sensor *entity.Sensor) error

	// Delete removes a sensor record by hardware identifier.
	Delete(ctx context.Context, sensorID string) error
}
