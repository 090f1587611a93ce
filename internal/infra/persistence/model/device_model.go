package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a push endpoint registered by a user's mobile app. The
// (user_id, fcm_token) pair is unique so re-registering a token is a
// conflict the repository can detect.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_devices_user_token,priority:1"`
	FCMToken  string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_user_devices_user_token,priority:2"`
	DeviceID  string    `gorm:"type:varchar(255)"`
	Platform  string    `gorm:"type:varchar(50)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
