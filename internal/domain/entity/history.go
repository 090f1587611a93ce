package entity

import (
	"time"

	"github.com/google/uuid"
)

// SensorSnapshot is one append-only history record of a sensor's values.
// Immutable once written; timestamps increase per (user, sensor).
type SensorSnapshot struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	SensorID  string     `json:"sensor_id"`
	Kind      SensorKind `json:"kind"`
	Values    Values     `json:"values"`
	Timestamp time.Time  `json:"timestamp"`
}
