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

// historyRepository implements the repository.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// Append writes one immutable snapshot.
func (repo *historyRepository) Append(ctx context.Context, snapshot *entity.SensorSnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	if err := repo.db.WithContext(ctx).Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append history snapshot")
	}

	snapshot.ID = snapshotM.ID

	return nil
}

// Query returns matching snapshots ordered newest first.
func (repo *historyRepository) Query(ctx context.Context, q repository.HistoryQuery) ([]*entity.SensorSnapshot, error) {
	var snapshotModels []*model.SensorHistoryModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", q.UserID)
	if q.SensorID != "" {
		query = query.Where("sensor_id = ?", q.SensorID)
	}
	if !q.From.IsZero() {
		query = query.Where("timestamp >= ?", q.From)
	}
	if !q.To.IsZero() {
		query = query.Where("timestamp <= ?", q.To)
	}

	if err := query.
		Order("timestamp DESC").
		Find(&snapshotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query sensor history")
	}

	snapshots := make([]*entity.SensorSnapshot, 0, len(snapshotModels))
	for _, snapshotM := range snapshotModels {
		snapshots = append(snapshots, toSnapshotDomain(snapshotM))
	}

	return snapshots, nil
}

// DeleteByUser removes all snapshots for a user, returning the count.
func (repo *historyRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SensorHistoryModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete history by user")
	}

	return result.RowsAffected, nil
}

// DeleteByID removes a single snapshot.
func (repo *historyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SensorHistoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete history entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSnapshotNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSnapshotDomain converts a GORM SensorHistoryModel to a domain SensorSnapshot entity.
func toSnapshotDomain(data *model.SensorHistoryModel) *entity.SensorSnapshot {
	if data == nil {
		return nil
	}

	return &entity.SensorSnapshot{
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
		Timestamp: data.Timestamp,
	}
}

// fromSnapshotDomain converts a domain SensorSnapshot entity to a GORM SensorHistoryModel.
func fromSnapshotDomain(data *entity.SensorSnapshot) *model.SensorHistoryModel {
	if data == nil {
		return nil
	}

	return &model.SensorHistoryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		SensorID:     data.SensorID,
		Kind:         string(data.Kind),
		Temperature:  data.Values.Temperature,
		Latitude:     data.Values.Latitude,
		Longitude:    data.Values.Longitude,
		BatteryLevel: data.Values.BatteryLevel,
		Humidity:     data.Values.Humidity,
		Timestamp:    data.Timestamp,
	}
}
