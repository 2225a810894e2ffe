// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// Product is a vendor-owned, geo-tagged listing. Unlike donations it has no
// state machine, only an availability toggle and monotone counters.
type Product struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the product.
	VendorID       uuid.UUID // The owning vendor's user ID.
	Name           string    // Product name.
	Description    string    // Product description.
	Category       Category  // Marketplace category.
	Price          float64   // Listing price; never negative.
	Images         []string  // Opaque stored-file references from the upload layer.
	Address        string    // Human-readable pickup/store address.
	Latitude       float64   // Listing latitude.
	Longitude      float64   // Listing longitude.
	IsAvailable    bool      // Availability toggle controlled by the vendor.
	EcoFriendly    bool      // Marks reuse/eco listings.
	Tags           []string  // Free-form search tags.
	ContactVisible bool      // Whether vendor contact details are shown on the listing.
	ViewCount      int       // Monotone view counter.
	InquiryCount   int       // Monotone inquiry counter.
	CreatedAt      time.Time // Timestamp of creation.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// Location returns the listing coordinate.
func (p *Product) Location() geo.Coordinate {
	return geo.Coordinate{Lat: p.Latitude, Lng: p.Longitude}
}
