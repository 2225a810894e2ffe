// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// DonationStatus represents the lifecycle state of a donation.
// A donation moves strictly forward: available -> requested -> confirmed ->
// completed, or available -> expired. It never reverts to an earlier state.
type DonationStatus string

const (
	// DonationAvailable means the donation is open for any NGO to request.
	DonationAvailable DonationStatus = "available"
	// DonationRequested means exactly one NGO has claimed the donation.
	DonationRequested DonationStatus = "requested"
	// DonationConfirmed means the owning vendor accepted the NGO's request.
	DonationConfirmed DonationStatus = "confirmed"
	// DonationCompleted is terminal; the handover happened and points were awarded.
	DonationCompleted DonationStatus = "completed"
	// DonationExpired is terminal; the expiry date passed while still available.
	DonationExpired DonationStatus = "expired"
)

// String returns the string representation of the DonationStatus.
func (s DonationStatus) String() string {
	return string(s)
}

// IsValid checks if the DonationStatus is a valid value.
func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationAvailable, DonationRequested, DonationConfirmed, DonationCompleted, DonationExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible from s.
func (s DonationStatus) IsTerminal() bool {
	return s == DonationCompleted || s == DonationExpired
}

// donationTransitions is the single source of truth for legal status moves.
// Guards beyond the status itself (ownership, expiry) live on the operations.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationAvailable: {DonationRequested, DonationExpired},
	DonationRequested: {DonationConfirmed},
	DonationConfirmed: {DonationCompleted},
	DonationCompleted: {},
	DonationExpired:   {},
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s DonationStatus) CanTransition(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Donation is a vendor-posted offer of surplus goods available for one NGO
// to claim and collect. Content fields belong exclusively to the owning
// vendor while the status is still available.
type Donation struct {
	ID                 uuid.UUID      // The Global Unique Identifier (GUID) for the donation.
	VendorID           uuid.UUID      // The owning vendor's user ID.
	Title              string         // Short human-readable title.
	Description        string         // Longer description of the goods.
	Category           Category       // Marketplace category.
	Quantity           string         // Free-form quantity description, e.g. "12 boxes".
	Images             []string       // Opaque stored-file references from the upload layer.
	Address            string         // Human-readable pickup address.
	Latitude           float64        // Pickup latitude.
	Longitude          float64        // Pickup longitude.
	ExpiryDate         time.Time      // Instant after which an available donation is eligible for expiry.
	Status             DonationStatus // Current lifecycle state.
	RequestedBy        *uuid.UUID     // The requesting NGO's user ID; set exactly once at the request transition.
	RequestedAt        *time.Time     // When the request transition happened.
	ConfirmedAt        *time.Time     // When the vendor confirmed the request.
	CompletedAt        *time.Time     // When the vendor marked the handover complete.
	PickupInstructions string         // Optional pickup hints for the NGO.
	ImpactNotes        string         // Vendor's notes recorded at completion.
	PointsAwarded      int            // 0 until completion, then the fixed award amount.
	CreatedAt          time.Time      // Timestamp of creation.
	UpdatedAt          time.Time      // Timestamp of the last modification.
}

// Location returns the pickup coordinate.
func (d *Donation) Location() geo.Coordinate {
	return geo.Coordinate{Lat: d.Latitude, Lng: d.Longitude}
}

// IsExpired reports whether the expiry date has passed at the given instant.
// The same predicate guards lazy expiry and the request transition.
func (d *Donation) IsExpired(now time.Time) bool {
	return now.After(d.ExpiryDate)
}

// IsOwnedBy reports whether the given user is the owning vendor.
func (d *Donation) IsOwnedBy(vendorID uuid.UUID) bool {
	return d.VendorID == vendorID
}

// Editable reports whether content fields may still be mutated or the
// donation deleted. Only available donations are editable.
func (d *Donation) Editable() bool {
	return d.Status == DonationAvailable
}
