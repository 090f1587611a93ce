package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bikesafe/internal/delivery/http/response"
	"bikesafe/internal/domain/entity"
	"bikesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SensorHandlerParams holds dependencies for SensorHandler, injected by Fx.
type SensorHandlerParams struct {
	fx.In

	TelemetryUC usecase.TelemetryUsecase
	Logger      *slog.Logger
}

// SensorHandler holds dependencies for the telemetry endpoints.
type SensorHandler struct {
	telemetryUC usecase.TelemetryUsecase
	logger      *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler
func NewSensorHandler(params SensorHandlerParams) *SensorHandler {
	return &SensorHandler{
		telemetryUC: params.TelemetryUC,
		logger:      params.Logger,
	}
}

// SensorValuesRequest carries the raw metric fields of one update. Fields
// foreign to the sensor kind are dropped by the pipeline.
type SensorValuesRequest struct {
	Temperature  *float64 `json:"temperature"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	BatteryLevel *float64 `json:"battery_level"`
	Humidity     *float64 `json:"humidity"`
}

// UpdateSensorRequest represents the request body for a telemetry update
type UpdateSensorRequest struct {
	SensorID string              `json:"sensor_id" validate:"required"`
	Kind     string              `json:"kind" validate:"required,oneof=temperature gps battery humidity"`
	Values   SensorValuesRequest `json:"values"`
}

// CreateSensorRequest represents the request body for explicit registration
type CreateSensorRequest struct {
	SensorID string              `json:"sensor_id" validate:"required"`
	Kind     string              `json:"kind" validate:"required,oneof=temperature gps battery humidity"`
	Values   SensorValuesRequest `json:"values"`
}

// GPSStatusRequest represents an explicit GPS connection transition
type GPSStatusRequest struct {
	SensorID string `json:"sensor_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=connected disconnected"`
}

func toEntityValues(v SensorValuesRequest) entity.Values {
	return entity.Values{
		Temperature:  v.Temperature,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		BatteryLevel: v.BatteryLevel,
		Humidity:     v.Humidity,
	}
}

// UpdateSensor handles one telemetry ingest. The response carries the
// updated state and the preference-filtered alerts; push delivery runs
// asynchronously and is never awaited here.
func (h *SensorHandler) UpdateSensor(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateSensorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.telemetryUC.Ingest(c.Request().Context(), userID, &usecase.IngestInput{
		SensorID: req.SensorID,
		Kind:     entity.SensorKind(req.Kind),
		Values:   toEntityValues(req.Values),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Sensor updated successfully")
}

// CreateSensor handles explicit sensor registration
func (h *SensorHandler) CreateSensor(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateSensorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sensor, err := h.telemetryUC.CreateSensor(c.Request().Context(), userID, &usecase.CreateSensorInput{
		SensorID: req.SensorID,
		Kind:     entity.SensorKind(req.Kind),
		Values:   toEntityValues(req.Values),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sensor, "Sensor created successfully")
}

// GetSensorData handles a single-sensor state lookup
func (h *SensorHandler) GetSensorData(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sensorID := c.QueryParam("sensorId")
	if sensorID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "sensorId query parameter is required")
	}

	sensor, err := h.telemetryUC.GetSensor(c.Request().Context(), userID, sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sensor, "Sensor data retrieved successfully")
}

// GetAllSensorData handles retrieving all of the user's sensors
func (h *SensorHandler) GetAllSensorData(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sensors, err := h.telemetryUC.ListSensors(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sensors, "Sensor data retrieved successfully")
}

// DeleteSensor handles removing one of the user's sensors
func (h *SensorHandler) DeleteSensor(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sensorID := c.Param("sensorId")
	if sensorID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "sensorId path parameter is required")
	}

	if err := h.telemetryUC.DeleteSensor(c.Request().Context(), userID, sensorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Sensor deleted successfully")
}

// ReportGPSStatus forwards an explicit connected/disconnected transition
func (h *SensorHandler) ReportGPSStatus(c echo.Context) error {
	var req GPSStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid GPS status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.telemetryUC.ReportGPSStatus(c.Request().Context(), req.SensorID, usecase.GPSStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "GPS status reported successfully")
}

// GetHistory handles a history query, newest first
func (h *SensorHandler) GetHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	query := &usecase.HistoryQueryInput{
		SensorID: c.QueryParam("sensorId"),
	}

	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "from must be RFC 3339")
		}
		query.From = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "to must be RFC 3339")
		}
		query.To = t
	}

	snapshots, err := h.telemetryUC.QueryHistory(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshots, "Sensor history retrieved successfully")
}

// PurgeHistory handles deleting all of a user's snapshots. Callers can only
// purge their own history.
func (h *SensorHandler) PurgeHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if targetID != userID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot purge another user's history")
	}

	count, err := h.telemetryUC.PurgeHistory(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": count}, "Sensor history purged successfully")
}

// DeleteHistoryEntry handles deleting a single snapshot
func (h *SensorHandler) DeleteHistoryEntry(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	historyID, err := uuid.Parse(c.Param("historyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid history ID")
	}

	if err := h.telemetryUC.DeleteHistoryEntry(c.Request().Context(), historyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "History entry deleted successfully")
}

// GetPairingQR renders the pairing QR code as a PNG
func (h *SensorHandler) GetPairingQR(c echo.Context) error {
	sensorID := c.Param("sensorId")
	if sensorID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "sensorId path parameter is required")
	}

	png, err := h.telemetryUC.GeneratePairingQR(c.Request().Context(), sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
