package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bikesafe/internal/domain/entity"
	domainerrors "bikesafe/internal/domain/errors"
	"bikesafe/internal/domain/repository"
	"bikesafe/internal/domain/service"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// alertTitles maps alert kinds to notification titles.
var alertTitles = map[entity.AlertKind]string{
	entity.AlertKindSafeZone:      "Safe Zone Alert",
	entity.AlertKindBattery:       "Battery Alert",
	entity.AlertKindTemperature:   "Temperature Alert",
	entity.AlertKindTheft:         "Theft Alert",
	entity.AlertKindSensorFailure: "Sensor Failure",
	entity.AlertKindGPS:           "GPS Status",
}

type alertService struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	pushSvc    service.PushService
	logger     *slog.Logger
}

// NewAlertService creates a new alert service instance.
func NewAlertService(
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		pushSvc:    pushSvc,
		logger:     logger,
	}
}

// GetPreferences returns the user's opted-in alert kinds.
func (s *alertService) GetPreferences(ctx context.Context, userID uuid.UUID) ([]entity.AlertKind, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	return user.AlertPreferences, nil
}

// UpdatePreferences replaces the user's opted-in alert kinds. An empty set
// is valid and silences everything.
func (s *alertService) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs []entity.AlertKind) ([]entity.AlertKind, error) {
	for _, kind := range prefs {
		if !entity.ValidAlertKind(kind) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown alert kind: " + string(kind))
		}
	}

	if err := s.userRepo.UpdateAlertPreferences(ctx, userID, prefs); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update preferences")
	}

	return prefs, nil
}

// Send raises a manual alert through the same preference gate as the
// pipeline. Returns false when the user has opted out of the kind.
func (s *alertService) Send(ctx context.Context, userID uuid.UUID, kind entity.AlertKind, message string) (bool, error) {
	if !entity.ValidAlertKind(kind) {
		return false, domainerrors.ErrValidationFailed.WithDetails("unknown alert kind: " + string(kind))
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrUserNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	if !user.WantsAlert(kind) {
		return false, nil
	}

	event := &entity.AlertEvent{
		UserID:   userID,
		Kind:     kind,
		Message:  message,
		RaisedAt: time.Now(),
	}
	if err := s.Dispatch(ctx, event); err != nil {
		return false, err
	}

	return true, nil
}

// Dispatch delivers one raised alert to the user's active push endpoints.
// Tokens the channel reports permanently invalid are removed so they are
// never retried; transient delivery failures are logged, not surfaced, since
// retry policy belongs to the transport.
func (s *alertService) Dispatch(ctx context.Context, event *entity.AlertEvent) error {
	user, err := s.userRepo.FindByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	// Events are produced preference-filtered; the re-check here guards
	// against preferences changing while an event sat in the queue.
	if !user.WantsAlert(event.Kind) {
		s.logger.InfoContext(ctx, "alert suppressed by preferences",
			slog.String("user_id", event.UserID.String()),
			slog.String("kind", string(event.Kind)))

		return nil
	}

	devices, err := s.deviceRepo.FindActiveByUser(ctx, event.UserID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, ok := alertTitles[event.Kind]
	if !ok {
		title = "BikeSafe Alert"
	}

	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["kind"] = string(event.Kind)
	data["raised_at"] = event.RaisedAt.Format(time.RFC3339)

	totalSent, totalFailed := 0, 0
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		sent, failed, invalidTokens, err := s.pushSvc.SendBatch(ctx, tokens[i:end], title, event.Message, data)
		if err != nil {
			s.logger.ErrorContext(ctx, "push batch failed",
				slog.String("user_id", event.UserID.String()),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err))

			continue
		}
		totalSent += sent
		totalFailed += failed

		s.removeInvalidTokens(ctx, event.UserID, invalidTokens)
	}

	s.logger.InfoContext(ctx, "alert dispatched",
		slog.String("user_id", event.UserID.String()),
		slog.String("kind", string(event.Kind)),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed))

	return nil
}

// removeInvalidTokens drops endpoints the channel rejected as permanently
// invalid. Removal is idempotent: a token another dispatch already removed
// is not an error.
func (s *alertService) removeInvalidTokens(ctx context.Context, userID uuid.UUID, tokens []string) {
	for _, token := range tokens {
		err := s.deviceRepo.DeleteByToken(ctx, userID, token)
		if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			s.logger.WarnContext(ctx, "failed to remove invalid token",
				slog.String("user_id", userID.String()),
				slog.Any("error", err))
		}
	}
}
