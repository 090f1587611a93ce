package postgres

import (
	"context"
	"encoding/json"
	"time"

	"bikesafe/internal/domain/entity"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// UpdateAlertPreferences replaces the user's opted-in alert kinds.
func (repo *userRepository) UpdateAlertPreferences(ctx context.Context, userID uuid.UUID, prefs []entity.AlertKind) error {
	if prefs == nil {
		prefs = []entity.AlertKind{}
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to encode alert preferences")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"alert_preferences": string(raw),
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alert preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity. A row
// whose preference column cannot be decoded falls back to the default set
// rather than silencing the user entirely.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var prefs []entity.AlertKind
	if err := json.Unmarshal([]byte(data.AlertPreferences), &prefs); err != nil || prefs == nil {
		prefs = entity.DefaultAlertPreferences()
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		Name:             data.Name,
		Phone:            data.Phone,
		AlertPreferences: prefs,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
