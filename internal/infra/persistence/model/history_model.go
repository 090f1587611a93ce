package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorHistoryModel mirrors the 'sensor_history' table, the append-only
// telemetry log. Rows are immutable once written.
type SensorHistoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_sensor_history_user_ts,priority:1"`
	SensorID     string    `gorm:"type:varchar(255);not null;index"`
	Kind         string    `gorm:"type:varchar(50);not null"`
	Temperature  *float64
	Latitude     *float64
	Longitude    *float64
	BatteryLevel *float64
	Humidity     *float64
	Timestamp    time.Time `gorm:"not null;index:idx_sensor_history_user_ts,priority:2,sort:desc"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SensorHistoryModel) TableName() string {
	return "sensor_history"
}
