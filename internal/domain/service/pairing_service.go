package service

// PairingService generates and parses sensor-pairing QR codes. The mobile
// app scans the code to claim a sensor for the logged-in user.
type PairingService interface {
	// GeneratePairingQR renders a QR code PNG encoding a claim for the sensor.
	GeneratePairingQR(sensorID string) ([]byte, error)

	// ParsePairingQR extracts the sensorId from scanned QR payload data.
	ParsePairingQR(qrData string) (string, error)
}
