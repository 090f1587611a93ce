package handler

import (
	"log/slog"
	"net/http"

	"bikesafe/internal/delivery/http/response"
	"bikesafe/internal/domain/entity"
	"bikesafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC  usecase.AlertUsecase
	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// AlertHandler holds dependencies for alert-related handlers
type AlertHandler struct {
	alertUC  usecase.AlertUsecase
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC:  params.AlertUC,
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdatePreferencesRequest represents the request body for replacing the
// preference set. An empty list is valid and silences all alerts.
type UpdatePreferencesRequest struct {
	Preferences []string `json:"preferences"`
}

// SendAlertRequest represents the request body for a manual alert
type SendAlertRequest struct {
	Kind    string `json:"kind" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SaveTokenRequest represents the request body for registering an endpoint
type SaveTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android"`
}

// DeleteTokenRequest represents the request body for removing an endpoint
type DeleteTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// GetPreferences handles retrieving the opted-in alert kinds
func (h *AlertHandler) GetPreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.alertUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"preferences": prefs}, "Alert preferences retrieved successfully")
}

// UpdatePreferences handles replacing the opted-in alert kinds
func (h *AlertHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs := make([]entity.AlertKind, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		prefs = append(prefs, entity.AlertKind(p))
	}

	updated, err := h.alertUC.UpdatePreferences(c.Request().Context(), userID, prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"preferences": updated}, "Alert preferences updated successfully")
}

// SendAlert handles raising a manual alert through the preference gate
func (h *AlertHandler) SendAlert(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SendAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	delivered, err := h.alertUC.Send(c.Request().Context(), userID, entity.AlertKind(req.Kind), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !delivered {
		return response.Success(c, http.StatusOK, map[string]bool{"delivered": false}, "Alert suppressed by preferences")
	}

	return response.Success(c, http.StatusOK, map[string]bool{"delivered": true}, "Alert sent successfully")
}

// SaveToken handles registering a push endpoint
func (h *AlertHandler) SaveToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SaveTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device token saved successfully")
}

// DeleteToken handles removing a push endpoint. Removing an endpoint that is
// already gone succeeds.
func (h *AlertHandler) DeleteToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req DeleteTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token removed successfully")
}

// GetDevices handles listing the user's registered endpoints
func (h *AlertHandler) GetDevices(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}
