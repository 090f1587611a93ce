package repository

import (
	"context"
	"time"

	"bikesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when a history entry is not found.
var ErrSnapshotNotFound = errors.New("sensor snapshot not found")

// HistoryQuery narrows a history lookup. SensorID and the time range are
// optional; zero values mean "no constraint".
type HistoryQuery struct {
	UserID   uuid.UUID
	SensorID string
	From     time.Time
	To       time.Time
}

// HistoryRepository defines the interface for the append-only telemetry log.
type HistoryRepository interface {
	// Append writes one immutable snapshot.
	Append(ctx context.Context, snapshot *entity.SensorSnapshot) error

	// Query returns matching snapshots ordered newest first.
	Query(ctx context.Context, q HistoryQuery) ([]*entity.SensorSnapshot, error)

	// DeleteByUser removes all snapshots for a user, returning the count.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByID removes a single snapshot.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
