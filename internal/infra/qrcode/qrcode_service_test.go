package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	donationID := uuid.New()

	qrBytes, err := service.GeneratePickupQR(donationID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePickupQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			donationID := uuid.New()

			qrBytes, err := service.GeneratePickupQR(donationID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	donationID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		DonationID: donationID.String(),
		Type:       "pickup",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, donationID, parsed)
}

func TestQRCodeService_ParsePickupQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	donationID := uuid.New()

	data := QRCodeData{DonationID: donationID.String(), Type: "pickup"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, donationID, parsed)
}

func TestQRCodeService_ParsePickupQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"not JSON", "not-json-at-all"},
		{"wrong type", `{"donation_id":"` + uuid.New().String() + `","type":"subscription"}`},
		{"invalid UUID", `{"donation_id":"not-a-uuid","type":"pickup"}`},
		{"empty payload", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePickupQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}
