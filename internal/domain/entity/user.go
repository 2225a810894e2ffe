// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email         string         // The user's primary contact email, used as the login identifier.
	Name          string         // The user's display name or organization name.
	Phone         string         // Contact phone number shown to matched parties.
	IsActive      bool           // Inactive accounts are excluded from discovery and leaderboards.
	VendorProfile *VendorProfile // A pointer to the vendor-specific profile. Nil if this account has no 'vendor' role.
	NGOProfile    *NGOProfile    // A pointer to the NGO-specific profile. Nil if this account has no 'ngo' role.
	CreatedAt     time.Time      // Timestamp of when this user account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this user's data.
}

// VendorProfile holds data specific to the "vendor" role, including the
// cumulative donation score driving the leaderboard.
type VendorProfile struct {
	UserID         uuid.UUID // Foreign key that links this profile to a core User entity.
	StoreName      string    // The vendor's public store name.
	Address        string    // The human-readable store address.
	Latitude       float64   // The geographic latitude of the store.
	Longitude      float64   // The geographic longitude of the store.
	DonationScore  int       // Cumulative points from completed donations. Never decreases.
	ScoreUpdatedAt time.Time // Timestamp of the last score change; drives windowed leaderboards.
	UpdatedAt      time.Time // Timestamp of the last modification to this profile.
}

// NGOProfile holds data specific to the "ngo" role.
type NGOProfile struct {
	UserID       uuid.UUID // Foreign key that links this profile to a core User entity.
	Organization string    // The registered organization name.
	Address      string    // The human-readable office address.
	Latitude     float64   // The geographic latitude of the office.
	Longitude    float64   // The geographic longitude of the office.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}

// Roles derives the role set from the profiles attached to the account.
// Every account carries the customer role.
func (u *User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.VendorProfile != nil {
		roles = append(roles, RoleVendor)
	}
	if u.NGOProfile != nil {
		roles = append(roles, RoleNGO)
	}

	return roles
}

// HasRole checks whether the account carries the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles().Contains(role)
}

// Location returns the vendor store coordinate. Valid only for vendor accounts.
func (p *VendorProfile) Location() geo.Coordinate {
	return geo.Coordinate{Lat: p.Latitude, Lng: p.Longitude}
}

// Location returns the NGO office coordinate.
func (p *NGOProfile) Location() geo.Coordinate {
	return geo.Coordinate{Lat: p.Latitude, Lng: p.Longitude}
}
