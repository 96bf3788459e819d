package qrcode

import (
	"testing"

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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://example.com/signup")

	qrBytes, err := service.GenerateReferralQR("maria_lopez")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateReferralQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(tt.size, "M", "")

			qrBytes, err := service.GenerateReferralQR("maria_lopez")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateReferralQR_EmptyUsername(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateReferralQR("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestQRCodeService_ParseReferralQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://example.com/signup")

	username, err := service.ParseReferralQR("https://example.com/signup?ref=maria_lopez")
	require.NoError(t, err)
	assert.Equal(t, "maria_lopez", username)
}

func TestQRCodeService_ParseReferralQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://example.com/signup")

	// Usernames with URL-significant characters must survive the trip.
	username, err := service.ParseReferralQR("https://example.com/signup?ref=user_a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.Equal(t, "user_a1b2c3d4e5f6", username)
}

func TestQRCodeService_ParseReferralQR_MissingRef(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseReferralQR("https://example.com/signup")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no referral code")
}
