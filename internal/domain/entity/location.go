package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation tracks a user's bike: its last known position and the
// optional safe zone configured for it. One record per user.
type UserLocation struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	CurrentLocation Coordinate `json:"current_location"`
	SafeZone        *SafeZone  `json:"safe_zone,omitempty"` // Nil when no geofence is configured.
	UpdatedAt       time.Time  `json:"updated_at"`
}
