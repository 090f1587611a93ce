package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePairingQR("gps-01")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{SensorID: "gps-01", Type: "sensor-pairing"})
	require.NoError(t, err)

	sensorID, err := service.ParsePairingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "gps-01", sensorID)
}

func TestQRCodeService_ParsePairingQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{SensorID: "gps-01", Type: "coupon"})
	require.NoError(t, err)

	_, err = service.ParsePairingQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParsePairingQR_MissingSensorID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Type: "sensor-pairing"})
	require.NoError(t, err)

	_, err = service.ParsePairingQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParsePairingQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePairingQR("not json")
	assert.Error(t, err)
}
