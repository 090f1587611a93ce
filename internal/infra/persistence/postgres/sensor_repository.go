// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sensorRepository implements the repository.SensorRepository interface.
type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{
		db: db,
	}
}

// Create persists a new sensor record. The unique constraint on sensor_id
// decides the first-writer binding race: the loser gets ErrDuplicateSensor.
func (repo *sensorRepository) Create(ctx context.Context, sensor *entity.Sensor) error {
	sensorM := fromSensorDomain(sensor)

	if err := repo.db.WithContext(ctx).Create(sensorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSensor
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor")
	}

	sensor.ID = sensorM.ID
	sensor.CreatedAt = sensorM.CreatedAt
	sensor.UpdatedAt = sensorM.UpdatedAt

	return nil
}

// FindBySensorID retrieves a sensor by its hardware identifier.
func (repo *sensorRepository) FindBySensorID(ctx context.Context, sensorID string) (*entity.Sensor, error) {
	var sensorM model.SensorModel

	if err := repo.db.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		First(&sensorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, errors.Wrap(err, "failed to find sensor by sensor ID")
	}

	return toSensorDomain(&sensorM), nil
}

// FindByUser retrieves all sensors bound to a user.
func (repo *sensorRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sensor, error) {
	var sensorModels []*model.SensorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sensorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sensors by user")
	}

	sensors := make([]*entity.Sensor, 0, len(sensorModels))
	for _, sensorM := range sensorModels {
		sensors = append(sensors, toSensorDomain(sensorM))
	}

	return sensors, nil
}

// Update persists the sensor's current values and timestamps. The user_id
// predicate keeps an update from ever crossing the ownership binding.
func (repo *sensorRepository) Update(ctx context.Context, sensor *entity.Sensor) error {
	sensorM := fromSensorDomain(sensor)

	result := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("sensor_id = ? AND user_id = ?", sensor.SensorID, sensor.UserID).
		Select("temperature", "latitude", "longitude", "battery_level", "humidity",
			"last_updated_at", "last_history_saved_at", "updated_at").
		Updates(sensorM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sensor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// Delete removes a sensor record by hardware identifier.
func (repo *sensorRepository) Delete(ctx context.Context, sensorID string) error {
	result := repo.db.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Delete(&model.SensorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sensor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSensorDomain converts a GORM SensorModel to a domain Sensor entity.
func toSensorDomain(data *model.SensorModel) *entity.Sensor {
	if data == nil {
		return nil
	}

	return &entity.Sensor{
		ID:       data.ID,
		UserID:   data.UserID,
		SensorID: data.SensorID,
		Kind:     entity.SensorKind(data.Kind),
		Values: entity.Values{
			Temperature:  data.Temperature,
			Latitude:     data.Latitude,
			Longitude:    data.Longitude,
			BatteryLevel: data.BatteryLevel,
			Humidity:     data.Humidity,
		},
		LastUpdatedAt:      data.LastUpdatedAt,
		LastHistorySavedAt: data.LastHistorySavedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSensorDomain converts a domain Sensor entity to a GORM SensorModel.
func fromSensorDomain(data *entity.Sensor) *model.SensorModel {
	if data == nil {
		return nil
	}

	return &model.SensorModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		SensorID:           data.SensorID,
		Kind:               string(data.Kind),
		Temperature:        data.Values.Temperature,
		Latitude:           data.Values.Latitude,
		Longitude:          data.Values.Longitude,
		BatteryLevel:       data.Values.BatteryLevel,
		Humidity:           data.Values.Humidity,
		LastUpdatedAt:      data.LastUpdatedAt,
		LastHistorySavedAt: data.LastHistorySavedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
