package postgres

import (
	"context"
	"time"

	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindByUser retrieves the location record for a user.
func (repo *locationRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return toLocationDomain(&locationM), nil
}

// Upsert creates or replaces the location record for the user.
func (repo *locationRepository) Upsert(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_latitude", "current_longitude",
				"zone_latitude", "zone_longitude", "zone_radius_meters",
				"updated_at",
			}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	location.ID = locationM.ID

	return nil
}

// UpdateCurrentLocation updates only the current position, creating the
// record when absent. A configured safe zone is never touched here.
func (repo *locationRepository) UpdateCurrentLocation(ctx context.Context, userID uuid.UUID, position entity.Coordinate) error {
	locationM := &model.UserLocationModel{
		ID:               uuid.New(),
		UserID:           userID,
		CurrentLatitude:  position.Latitude,
		CurrentLongitude: position.Longitude,
		UpdatedAt:        time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_latitude", "current_longitude", "updated_at",
			}),
		}).
		Create(locationM).Error; err != nil {
		return errors.Wrap(err, "failed to update current location")
	}

	return nil
}

// UpdateSafeZone sets or replaces the user's safe zone.
func (repo *locationRepository) UpdateSafeZone(ctx context.Context, userID uuid.UUID, zone entity.SafeZone) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"zone_latitude":      zone.Center.Latitude,
			"zone_longitude":     zone.Center.Longitude,
			"zone_radius_meters": zone.RadiusMeters,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update safe zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	location := &entity.UserLocation{
		ID:     data.ID,
		UserID: data.UserID,
		CurrentLocation: entity.Coordinate{
			Latitude:  data.CurrentLatitude,
			Longitude: data.CurrentLongitude,
		},
		UpdatedAt: data.UpdatedAt,
	}

	if data.ZoneLatitude != nil && data.ZoneLongitude != nil && data.ZoneRadiusMeters != nil {
		location.SafeZone = &entity.SafeZone{
			Center: entity.Coordinate{
				Latitude:  *data.ZoneLatitude,
				Longitude: *data.ZoneLongitude,
			},
			RadiusMeters: *data.ZoneRadiusMeters,
		}
	}

	return location
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	locationM := &model.UserLocationModel{
		ID:               data.ID,
		UserID:           data.UserID,
		CurrentLatitude:  data.CurrentLocation.Latitude,
		CurrentLongitude: data.CurrentLocation.Longitude,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.SafeZone != nil {
		lat, lon, radius := data.SafeZone.Center.Latitude, data.SafeZone.Center.Longitude, data.SafeZone.RadiusMeters
		locationM.ZoneLatitude = &lat
		locationM.ZoneLongitude = &lon
		locationM.ZoneRadiusMeters = &radius
	}

	return locationM
}
