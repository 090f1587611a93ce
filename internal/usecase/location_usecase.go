package usecase

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ZoneEvaluation is the outcome of a safe-zone check. Applicable is false
// when the user has no zone configured; callers must not raise a safe-zone
// alert in that case.
type ZoneEvaluation struct {
	Applicable     bool
	Outside        bool
	DistanceMeters float64
}

// SetSafeZoneInput configures a user's geofence.
type SetSafeZoneInput struct {
	Center       entity.Coordinate
	RadiusMeters float64
}

// LocationUsecase owns per-user current location and safe-zone state.
type LocationUsecase interface {
	// UpdateLocation records the bike's current position, creating the
	// record on first write, and evaluates the safe zone.
	UpdateLocation(ctx context.Context, userID uuid.UUID, position entity.Coordinate) (*ZoneEvaluation, error)

	// GetRealtime returns the current location together with any zone.
	GetRealtime(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// SetSafeZone sets or replaces the user's safe zone.
	SetSafeZone(ctx context.Context, userID uuid.UUID, input *SetSafeZoneInput) (*entity.UserLocation, error)

	// GetSafeZone returns the configured zone, or ErrSafeZoneNotFound.
	GetSafeZone(ctx context.Context, userID uuid.UUID) (*entity.SafeZone, error)

	// Evaluate checks a position against the user's zone without mutating
	// anything.
	Evaluate(ctx context.Context, userID uuid.UUID, position entity.Coordinate) (*ZoneEvaluation, error)
}
