// Package qrcode renders sensor-pairing QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"bikesafe/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	SensorID string `json:"sensor_id"`
	Type     string `json:"type"`
}

// qrTypePairing marks a payload as a sensor-pairing claim.
const qrTypePairing = "sensor-pairing"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.PairingService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePairingQR generates a QR code encoding a claim for the sensor
func (s *qrcodeService) GeneratePairingQR(sensorID string) ([]byte, error) {
	data := QRCodeData{
		SensorID: sensorID,
		Type:     qrTypePairing,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePairingQR parses QR code data and returns the sensor ID
func (s *qrcodeService) ParsePairingQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypePairing {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.SensorID == "" {
		return "", fmt.Errorf("QR code is missing the sensor ID")
	}

	return data.SensorID, nil
}
