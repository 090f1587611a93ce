package usecase

import (
	"context"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase owns alert preferences and delivery.
type AlertUsecase interface {
	// GetPreferences returns the user's opted-in alert kinds.
	GetPreferences(ctx context.Context, userID uuid.UUID) ([]entity.AlertKind, error)

	// UpdatePreferences replaces the user's opted-in alert kinds.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs []entity.AlertKind) ([]entity.AlertKind, error)

	// Send raises a manual alert through the same preference gate as the
	// pipeline. Returns false when the user has opted out of the kind.
	Send(ctx context.Context, userID uuid.UUID, kind entity.AlertKind, message string) (bool, error)

	// Dispatch delivers one raised alert to the user's registered push
	// endpoints, removing endpoints the channel reports permanently
	// invalid. No endpoints is a no-op, not an error.
	Dispatch(ctx context.Context, event *entity.AlertEvent) error
}
