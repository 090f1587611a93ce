// Package model contains the GORM-specific table structs. These are exported
// so the GORM Gen tool can consume them from its own package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorModel mirrors the 'sensors' table: the authoritative current-value
// record per physical sensor. sensor_id carries a unique constraint so the
// first writer wins the binding race at the database.
type SensorModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	SensorID           string    `gorm:"type:varchar(255);unique;not null"`
	Kind               string    `gorm:"type:varchar(50);not null"`
	Temperature        *float64
	Latitude           *float64
	Longitude          *float64
	BatteryLevel       *float64
	Humidity           *float64
	LastUpdatedAt      time.Time `gorm:"not null"`
	LastHistorySavedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SensorModel) TableName() string {
	return "sensors"
}
