// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bikesafe/internal/delivery/http/middleware"
	"bikesafe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SensorHandler   *handler.SensorHandler
	LocationHandler *handler.LocationHandler
	AlertHandler    *handler.AlertHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sensorHandler   *handler.SensorHandler
	locationHandler *handler.LocationHandler
	alertHandler    *handler.AlertHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sensorHandler:   params.SensorHandler,
		locationHandler: params.LocationHandler,
		alertHandler:    params.AlertHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Telemetry routes
	sensorGroup := e.Group("/sensor")
	sensorGroup.Use(r.authMiddleware.Authenticate)
	{
		sensorGroup.POST("/update", r.sensorHandler.UpdateSensor)
		sensorGroup.POST("/create", r.sensorHandler.CreateSensor)
		sensorGroup.GET("/data", r.sensorHandler.GetSensorData)
		sensorGroup.GET("/alldata", r.sensorHandler.GetAllSensorData)
		sensorGroup.POST("/gps-status", r.sensorHandler.ReportGPSStatus)
		sensorGroup.GET("/history", r.sensorHandler.GetHistory)
		sensorGroup.DELETE("/history/user/:userId", r.sensorHandler.PurgeHistory)
		sensorGroup.DELETE("/history/:historyId", r.sensorHandler.DeleteHistoryEntry)
		sensorGroup.GET("/pairing-qr/:sensorId", r.sensorHandler.GetPairingQR)
		sensorGroup.DELETE("/:sensorId", r.sensorHandler.DeleteSensor)
	}

	// Location and safe-zone routes
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("/update", r.locationHandler.UpdateLocation)
		locationGroup.GET("/realtime", r.locationHandler.GetRealtime)
		locationGroup.POST("/safe-zone", r.locationHandler.SetSafeZone)
		locationGroup.GET("/safe-zone", r.locationHandler.GetSafeZone)
	}

	// Alert preference and push-endpoint routes
	alertGroup := e.Group("/alert")
	alertGroup.Use(r.authMiddleware.Authenticate)
	{
		alertGroup.GET("/preferences", r.alertHandler.GetPreferences)
		alertGroup.POST("/preferences", r.alertHandler.UpdatePreferences)
		alertGroup.POST("/send", r.alertHandler.SendAlert)
		alertGroup.POST("/save-token", r.alertHandler.SaveToken)
		alertGroup.DELETE("/token", r.alertHandler.DeleteToken)
		alertGroup.GET("/devices", r.alertHandler.GetDevices)
	}
}
