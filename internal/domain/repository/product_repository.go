// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings. Nil fields mean "any".
type ProductFilter struct {
	Category      *entity.Category
	OnlyAvailable bool
	Page          int
	Limit         int
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update persists changes to an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves products matching the filter, newest first, paginated in
	// the store. Returns the total count over the full filtered set.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// ListWithinBound retrieves all products matching the filter inside the
	// bounding box, newest first. Callers apply the exact radius test.
	ListWithinBound(ctx context.Context, filter ProductFilter, bound geo.Bound) ([]*entity.Product, error)

	// ListByVendor retrieves all products posted by a vendor, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// CountByVendor counts a vendor's product listings.
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// IncrementViewCount atomically bumps the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// IncrementInquiryCount atomically bumps the inquiry counter.
	IncrementInquiryCount(ctx context.Context, id uuid.UUID) error
}
