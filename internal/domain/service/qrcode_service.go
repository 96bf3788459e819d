package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReferralQR generates a QR code image for a profile's referral link
	GenerateReferralQR(username string) ([]byte, error)

	// ParseReferralQR parses scanned QR data and returns the referrer username
	ParseReferralQR(qrData string) (string, error)
}
