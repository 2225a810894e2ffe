// Package usecase defines the application's use case interfaces and their
// input/output shapes. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDonationInput represents the input for posting a new donation.
type CreateDonationInput struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Quantity           string    `json:"quantity"`
	Images             []string  `json:"images,omitempty"`
	Address            string    `json:"address"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	ExpiryDate         time.Time `json:"expiry_date"`
	PickupInstructions string    `json:"pickup_instructions,omitempty"`
}

// UpdateDonationInput represents a partial update of an available donation.
// Nil fields are left untouched.
type UpdateDonationInput struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Category           *string    `json:"category,omitempty"`
	Quantity           *string    `json:"quantity,omitempty"`
	Address            *string    `json:"address,omitempty"`
	Latitude           *float64   `json:"latitude,omitempty"`
	Longitude          *float64   `json:"longitude,omitempty"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty"`
	PickupInstructions *string    `json:"pickup_instructions,omitempty"`
}

// DonationUsecase defines the donation lifecycle use cases. Every transition
// enforces the status precondition and, for vendor actions, ownership of the
// donation. Identity and role membership are established by the caller.
type DonationUsecase interface {
	// Create posts a new donation. The expiry date must be strictly in the future.
	Create(ctx context.Context, vendorID uuid.UUID, input *CreateDonationInput) (*entity.Donation, error)

	// Get retrieves a donation, lazily expiring it when past its expiry date.
	Get(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// Update mutates content fields of an available donation owned by vendorID.
	Update(ctx context.Context, vendorID, id uuid.UUID, input *UpdateDonationInput) (*entity.Donation, error)

	// Delete removes an available donation owned by vendorID.
	Delete(ctx context.Context, vendorID, id uuid.UUID) error

	// Request claims an available donation for an NGO. At most one NGO ever
	// succeeds; a donation past its expiry is flipped to expired instead.
	Request(ctx context.Context, ngoID, id uuid.UUID) (*entity.Donation, error)

	// Confirm accepts the pending request on a donation owned by vendorID.
	Confirm(ctx context.Context, vendorID, id uuid.UUID) (*entity.Donation, error)

	// Complete finishes a confirmed donation owned by vendorID, awarding the
	// fixed point amount to the vendor exactly once.
	Complete(ctx context.Context, vendorID, id uuid.UUID, impactNotes string) (*entity.Donation, error)

	// VendorDonations lists all donations posted by a vendor, newest first.
	VendorDonations(ctx context.Context, vendorID uuid.UUID) ([]*entity.Donation, error)

	// NGORequests lists all donations requested by an NGO, newest first.
	NGORequests(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error)

	// PickupQR renders a QR code encoding the pickup claim for a donation.
	PickupQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
