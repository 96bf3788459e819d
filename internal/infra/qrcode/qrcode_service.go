package qrcode

import (
	"fmt"
	"net/url"

	"unigate/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultReferralBaseURL = "https://app.unigate.io/signup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	referralBaseURL      string
}

// NewQRCodeService creates a new QR code service instance. The referral base
// URL is the signup page the encoded link points at; the scanned code works in
// any camera app, not just ours.
func NewQRCodeService(size int, errorCorrectionLevel string, referralBaseURL string) service.QRCodeService {
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

	if referralBaseURL == "" {
		referralBaseURL = defaultReferralBaseURL
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		referralBaseURL:      referralBaseURL,
	}
}

// GenerateReferralQR generates a QR code image pointing at the signup page
// with the profile's username as the referral code.
func (s *qrcodeService) GenerateReferralQR(username string) ([]byte, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required for a referral code")
	}

	link := fmt.Sprintf("%s?ref=%s", s.referralBaseURL, url.QueryEscape(username))

	// Generate QR code
	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReferralQR parses scanned QR data and returns the referrer username.
func (s *qrcodeService) ParseReferralQR(qrData string) (string, error) {
	parsed, err := url.Parse(qrData)
	if err != nil {
		return "", fmt.Errorf("failed to parse QR code data: %w", err)
	}

	username := parsed.Query().Get("ref")
	if username == "" {
		return "", fmt.Errorf("QR code carries no referral code")
	}

	return username, nil
}
