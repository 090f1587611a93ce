package repository

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when no location record exists for a user.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for per-user location and
// safe-zone persistence.
type LocationRepository interface {
	// FindByUser retrieves the location record for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// Upsert creates or replaces the location record for the user.
	Upsert(ctx context.Context, location *entity.UserLocation) error

	// UpdateCurrentLocation updates only the current position, leaving any
	// configured safe zone untouched. Creates the record when absent.
	UpdateCurrentLocation(ctx context.Context, userID uuid.UUID, position entity.Coordinate) error

	// UpdateSafeZone sets or replaces the user's safe zone.
	UpdateSafeZone(ctx context.Context, userID uuid.UUID, zone entity.SafeZone) error
}
