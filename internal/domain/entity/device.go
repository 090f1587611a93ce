package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push-delivery endpoint registered by one of a user's
// devices. The dispatcher removes it when the delivery channel reports the
// token permanently invalid.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token for push notifications.
	DeviceID  string    `json:"device_id"` // Hardware identifier supplied by the client.
	Platform  string    `json:"platform"`  // ios or android.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
