package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the account a bike and its sensors belong to. Registration,
// credentials and sessions live in the external auth service; this entity
// carries only what the alert pipeline needs.
type User struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	Name             string      `json:"name"`
	Phone            string      `json:"phone"`
	AlertPreferences []AlertKind `json:"alert_preferences"` // Kinds the user has opted into.
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// WantsAlert reports whether the user has opted into the given alert kind.
func (u *User) WantsAlert(kind AlertKind) bool {
	return slices.Contains(u.AlertPreferences, kind)
}
