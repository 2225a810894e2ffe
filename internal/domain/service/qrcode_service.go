package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a QR code encoding a donation pickup claim.
	GeneratePickupQR(donationID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the donation ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
