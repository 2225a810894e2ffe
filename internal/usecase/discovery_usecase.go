package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// NearbyQuery is the shared shape of all proximity/listing queries. Latitude
// and longitude are optional as a pair: when absent the query degrades to a
// plain filtered listing with no distance annotation. All numeric fields are
// pointers so that an explicitly supplied zero is validated and rejected
// rather than mistaken for "not set" and defaulted.
type NearbyQuery struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  *float64 `json:"radius,omitempty"`   // Defaults to the configured radius; domain [1,1000].
	Category  string   `json:"category,omitempty"` // Optional category filter (donations/products).
	Status    string   `json:"status,omitempty"`   // Optional status filter (donations; defaults to available).
	Page      *int     `json:"page,omitempty"`     // >= 1, defaults to 1.
	Limit     *int     `json:"limit,omitempty"`    // [1,50], defaults to 20.
}

// Pagination echoes the applied paging along with the total count over the
// full filtered set, independent of the returned slice.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// DonationMatch is a donation annotated with its straight-line distance from
// the query center, rounded to one decimal. Nil when no center was supplied.
// The distance is informational; ordering stays by recency of creation.
type DonationMatch struct {
	Donation   *entity.Donation `json:"donation"`
	Vendor     *entity.User     `json:"vendor,omitempty"`
	DistanceKm *float64         `json:"distance,omitempty"`
}

// ProductMatch is a product annotated with its distance from the query center.
type ProductMatch struct {
	Product    *entity.Product `json:"product"`
	DistanceKm *float64        `json:"distance,omitempty"`
}

// UserMatch is a vendor or NGO account annotated with its distance from the
// query center.
type UserMatch struct {
	User       *entity.User `json:"user"`
	DistanceKm *float64     `json:"distance,omitempty"`
}

// DonationSearchResult is a page of donation matches.
type DonationSearchResult struct {
	Matches    []*DonationMatch `json:"donations"`
	Pagination Pagination       `json:"pagination"`
}

// ProductSearchResult is a page of product matches.
type ProductSearchResult struct {
	Matches    []*ProductMatch `json:"products"`
	Pagination Pagination      `json:"pagination"`
}

// UserSearchResult is a page of vendor or NGO matches.
type UserSearchResult struct {
	Matches    []*UserMatch `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

// DiscoveryUsecase plans proximity queries: it validates the query, narrows
// candidates through the store's bounding-box pre-filter, applies the exact
// haversine radius test, annotates distances for display, and paginates.
// Invalid radius/page/limit values are rejected before any lookup; they are
// never silently clamped.
type DiscoveryUsecase interface {
	// NearbyDonations finds donations, defaulting the status filter to available.
	NearbyDonations(ctx context.Context, query *NearbyQuery) (*DonationSearchResult, error)

	// NearbyProducts finds available products.
	NearbyProducts(ctx context.Context, query *NearbyQuery) (*ProductSearchResult, error)

	// NearbyVendors finds active vendor accounts, ordered by donation score.
	NearbyVendors(ctx context.Context, query *NearbyQuery) (*UserSearchResult, error)

	// NearbyNGOs finds active NGO accounts.
	NearbyNGOs(ctx context.Context, query *NearbyQuery) (*UserSearchResult, error)
}
