package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel mirrors the 'user_locations' table. One row per user:
// last known bike position plus the optional safe zone. Zone columns are
// nullable together; a NULL radius means no geofence is configured.
type UserLocationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;unique;not null"`
	CurrentLatitude  float64   `gorm:"not null"`
	CurrentLongitude float64   `gorm:"not null"`
	ZoneLatitude     *float64
	ZoneLongitude    *float64
	ZoneRadiusMeters *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
