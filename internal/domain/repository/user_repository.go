package repository

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the read/write surface the alert pipeline needs on
// user records. Account lifecycle (registration, credentials) belongs to the
// external auth service.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateAlertPreferences replaces the user's opted-in alert kinds.
	UpdateAlertPreferences(ctx context.Context, userID uuid.UUID, prefs []entity.AlertKind) error
}
