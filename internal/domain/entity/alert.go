package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind identifies a category of alert a user can opt into.
type AlertKind string

const (
	AlertKindSafeZone      AlertKind = "safe-zone"
	AlertKindBattery       AlertKind = "battery"
	AlertKindTemperature   AlertKind = "temperature"
	AlertKindTheft         AlertKind = "theft"
	AlertKindSensorFailure AlertKind = "sensor-failure"
	AlertKindGPS           AlertKind = "gps"
)

// ValidAlertKind reports whether k is a known alert kind.
func ValidAlertKind(k AlertKind) bool {
	switch k {
	case AlertKindSafeZone, AlertKindBattery, AlertKindTemperature,
		AlertKindTheft, AlertKindSensorFailure, AlertKindGPS:
		return true
	}

	return false
}

// DefaultAlertPreferences is the preference set assigned to new users.
func DefaultAlertPreferences() []AlertKind {
	return []AlertKind{AlertKindSafeZone, AlertKindBattery}
}

// AlertEvent is a raised alert awaiting delivery. Transient: events are
// dispatched, never persisted.
type AlertEvent struct {
	UserID   uuid.UUID         `json:"user_id"`
	Kind     AlertKind         `json:"kind"`
	Message  string            `json:"message"`
	Data     map[string]string `json:"data,omitempty"`
	RaisedAt time.Time         `json:"raised_at"`
}
