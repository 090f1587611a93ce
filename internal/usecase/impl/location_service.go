package impl

import (
	"context"
	"errors"
	"time"

	"bikesafe/config"
	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
)

type locationService struct {
	locationRepo repository.LocationRepository
	config       *config.Config
}

// NewLocationService creates a new location service instance.
func NewLocationService(locationRepo repository.LocationRepository, cfg *config.Config) usecase.LocationUsecase {
	// If SafeZone is not configured, provide a default configuration
	if cfg.SafeZone == nil {
		cfg.SafeZone = &config.SafeZoneConfig{
			DefaultRadius: 500,   // Default to 500m
			MaxRadius:     50000, // Default to 50km
		}
	}

	return &locationService{
		locationRepo: locationRepo,
		config:       cfg,
	}
}

// UpdateLocation records the bike's current position and evaluates the safe
// zone against it. The record is created on first write; a configured zone
// is left untouched.
func (s *locationService) UpdateLocation(ctx context.Context, userID uuid.UUID, position entity.Coordinate) (*usecase.ZoneEvaluation, error) {
	if !position.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	if err := s.locationRepo.UpdateCurrentLocation(ctx, userID, position); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update current location")
	}

	return s.Evaluate(ctx, userID, position)
}

// GetRealtime returns the user's current location together with any zone.
func (s *locationService) GetRealtime(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no location recorded for this user")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load location")
	}

	return location, nil
}

// SetSafeZone sets or replaces the user's geofence. A zero radius falls back
// to the configured default.
func (s *locationService) SetSafeZone(ctx context.Context, userID uuid.UUID, input *usecase.SetSafeZoneInput) (*entity.UserLocation, error) {
	if !input.Center.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("zone center out of range")
	}
	if input.RadiusMeters < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be non-negative")
	}
	if input.RadiusMeters > s.config.SafeZone.MaxRadius {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius exceeds the maximum allowed")
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = s.config.SafeZone.DefaultRadius
	}

	zone := entity.SafeZone{Center: input.Center, RadiusMeters: radius}

	location, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load location")
		}

		// No location yet: seed the record with the zone center as the
		// current position.
		location = &entity.UserLocation{
			ID:              uuid.New(),
			UserID:          userID,
			CurrentLocation: input.Center,
			SafeZone:        &zone,
			UpdatedAt:       time.Now(),
		}
		if err := s.locationRepo.Upsert(ctx, location); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create location")
		}

		return location, nil
	}

	if err := s.locationRepo.UpdateSafeZone(ctx, userID, zone); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update safe zone")
	}
	location.SafeZone = &zone

	return location, nil
}

// GetSafeZone returns the configured zone.
func (s *locationService) GetSafeZone(ctx context.Context, userID uuid.UUID) (*entity.SafeZone, error) {
	location, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrSafeZoneNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load location")
	}
	if location.SafeZone == nil {
		return nil, domainerrors.ErrSafeZoneNotFound
	}

	return location.SafeZone, nil
}

// Evaluate checks a position against the user's zone. A missing record or
// an unconfigured zone is neutral, never an alert condition.
func (s *locationService) Evaluate(ctx context.Context, userID uuid.UUID, position entity.Coordinate) (*usecase.ZoneEvaluation, error) {
	location, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return &usecase.ZoneEvaluation{}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load location")
	}
	if location.SafeZone == nil {
		return &usecase.ZoneEvaluation{}, nil
	}

	distance := entity.Distance(position, location.SafeZone.Center)

	return &usecase.ZoneEvaluation{
		Applicable:     true,
		Outside:        distance > location.SafeZone.RadiusMeters,
		DistanceMeters: distance,
	}, nil
}
