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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents the request body for a position update
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// SetSafeZoneRequest represents the request body for configuring a geofence.
// A zero radius selects the configured default.
type SetSafeZoneRequest struct {
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"min=0"`
}

// UpdateLocation handles a manual position update
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	evaluation, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, entity.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, evaluation, "Location updated successfully")
}

// GetRealtime handles retrieving the current location and zone
func (h *LocationHandler) GetRealtime(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetRealtime(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// SetSafeZone handles configuring the geofence
func (h *LocationHandler) SetSafeZone(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SetSafeZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid safe zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.SetSafeZone(c.Request().Context(), userID, &usecase.SetSafeZoneInput{
		Center:       entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Safe zone updated successfully")
}

// GetSafeZone handles retrieving the configured geofence
func (h *LocationHandler) GetSafeZone(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	zone, err := h.locationUC.GetSafeZone(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone, "Safe zone retrieved successfully")
}
